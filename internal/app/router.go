package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/accesshub/accesshub/internal/auth"
	"github.com/accesshub/accesshub/internal/requests"
	"github.com/accesshub/accesshub/internal/software"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	Tokens          *auth.TokenManager
	AuthHandler     *auth.Handler
	SoftwareHandler *software.Handler
	RequestsHandler *requests.Handler
}

// NewRouter constructs the chi.Router with AccessHub defaults. Everything
// under /api except the auth endpoints sits behind the bearer-token
// authenticator; per-operation role checks live on the module routes.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(params.Config, params.Logger) {
		r.Use(mw)
	}
	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticator(params.Tokens))
			r.Route("/software", params.SoftwareHandler.MountRoutes)
			r.Route("/requests", params.RequestsHandler.MountRoutes)
		})
	})

	return r
}
