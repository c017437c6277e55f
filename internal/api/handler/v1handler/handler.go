// Package v1handler implements the HTTP handlers for version 1 of the API:
// CRUD over hosting accounts, domains, agents and email accounts, plus the
// expiry report endpoint. Routing uses chi; authentication is a bearer JWT
// verified by SecHandler.
package v1handler

import (
	"hostadmin/internal/registry"

	"github.com/go-chi/chi/v5"
)

// Deps holds the service dependencies the handlers call into.
type Deps struct {
	Registry registry.Registry
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes builds the v1 router. Every route requires bearer authentication.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(sec.Middleware)

	r.Route("/hosting-accounts", func(r chi.Router) {
		r.Post("/", h.CreateHostingAccount)
		r.Get("/", h.ListHostingAccounts)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetHostingAccount)
			r.Patch("/", h.UpdateHostingAccount)
			r.Delete("/", h.DeleteHostingAccount)
		})
	})

	r.Route("/domains", func(r chi.Router) {
		r.Post("/", h.CreateDomain)
		r.Get("/", h.ListDomains)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetDomain)
			r.Patch("/", h.UpdateDomain)
			r.Delete("/", h.DeleteDomain)
			r.Get("/agents", h.ListAgents)
			r.Post("/agents", h.CreateAgent)
			r.Get("/email-accounts", h.ListEmailAccounts)
			r.Post("/email-accounts", h.CreateEmailAccount)
		})
	})

	r.Route("/agents/{id}", func(r chi.Router) {
		r.Patch("/", h.UpdateAgent)
		r.Delete("/", h.DeleteAgent)
	})

	r.Route("/email-accounts/{id}", func(r chi.Router) {
		r.Patch("/", h.UpdateEmailAccount)
		r.Delete("/", h.DeleteEmailAccount)
	})

	r.Get("/reports/expiry", h.ExpiryReport)

	return r
}
