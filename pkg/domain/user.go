package domain

import "github.com/google/uuid"

// UserID identifies the authenticated admin user carried in API tokens.
type UserID uuid.UUID
