package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/arcadelab/wavearena-go/internal/api/apierr"
	"github.com/arcadelab/wavearena-go/internal/api/handler"
	"github.com/arcadelab/wavearena-go/internal/api/middleware"
	"github.com/arcadelab/wavearena-go/internal/dependencies/clock"
	"github.com/arcadelab/wavearena-go/internal/services/auth"
	"github.com/arcadelab/wavearena-go/internal/services/progress"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	Clock           clock.Clock
	AuthService     *auth.Service
	ProgressService *progress.Service

	// AllowedOrigins is the explicit allow-list for credentialed
	// cross-origin requests. Requests without an Origin header
	// (non-browser clients) always pass.
	AllowedOrigins []string

	// CookieSecure sets the Secure flag on session cookies
	CookieSecure bool
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.CookieSecure)
	progressHandler := handler.NewProgressHandler(cfg.ProgressService)
	healthHandler := handler.NewHealthHandler(cfg.Clock)

	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// All unmatched paths get a JSON 404
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFoundHandler)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)

	// Auth routes (no gate; logout is benign without a session)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected auth routes
	me := api.PathPrefix("/auth/me").Subrouter()
	me.Use(authMiddleware)
	me.HandleFunc("", authHandler.Me).Methods(http.MethodGet)

	// Progress routes (all require auth)
	prog := api.PathPrefix("/progress").Subrouter()
	prog.Use(authMiddleware)
	prog.HandleFunc("", progressHandler.Get).Methods(http.MethodGet)
	prog.HandleFunc("", progressHandler.Submit).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
