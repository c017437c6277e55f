package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"hostadmin/internal/config"
	"hostadmin/pkg/domain"
	"hostadmin/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SecHandlerOptions configures bearer-token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified against.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens and stores the authenticated user
// ID in the request context.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

type userIDKey struct{}

// UserIDKey is the context key under which the authenticated user ID is stored.
var UserIDKey = userIDKey{} //nolint: gochecknoglobals

// GetUserIDFromContext returns the authenticated user ID, or the zero value
// when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// HandleBearerAuth verifies the token and returns a context carrying the
// authenticated user ID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return s.publicKey, nil
		})
	if err != nil || !parsed.Valid {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token claims")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Middleware enforces bearer authentication on every request it wraps.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(auth, "Bearer ")
		if !found || token == "" {
			respondError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			respondError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
