package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the endpoint handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Profiles *ProfileHandler
	Catalog  *CatalogHandler
	Health   http.HandlerFunc
}

// RegisterRoutes mounts the public and gated endpoints on r. authenticate
// guards every route except login, signup and health.
func RegisterRoutes(r chi.Router, h Handlers, authenticate func(http.Handler) http.Handler) {
	if h.Health != nil {
		r.Get("/health", h.Health)
	}

	r.Post("/login", h.Auth.Login)
	r.Post("/users", h.Auth.Signup)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/users", h.Users.GetSelf)
		r.Get("/users/{id}", h.Users.Get)
		r.Put("/users/{id}", h.Users.Update)
		r.Delete("/users/{id}", h.Users.Delete)

		r.Get("/profiles", h.Profiles.List)
		r.Post("/profiles", h.Profiles.Create)
		r.Delete("/profiles/{id}", h.Profiles.Delete)

		r.Get("/catalog", h.Catalog.List)
	})
}
