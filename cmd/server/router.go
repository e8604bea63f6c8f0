package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/catalog-api/internal/api"
	apiMiddleware "github.com/phrazzld/catalog-api/internal/api/middleware"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(app.baseLogger)
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.messages)

	api.RegisterRoutes(r, api.Handlers{
		Auth:     api.NewAuthHandler(app.accountService, app.validator, app.messages, app.logger),
		Users:    api.NewUserHandler(app.accountService, app.validator, app.messages, app.logger),
		Profiles: api.NewProfileHandler(app.profileService, app.validator, app.messages, app.logger),
		Catalog:  api.NewCatalogHandler(app.catalogService, app.messages, app.logger),
		Health:   api.HealthHandler(app.db),
	}, authMiddleware.Authenticate)

	return r
}

// baseLogger seeds the request context with the application logger tagged
// with chi's request id.
func (app *application) baseLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := app.logger
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			log = log.With("request_id", reqID)
		}
		next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), log)))
	})
}
