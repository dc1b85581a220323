package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shockbase/levelborder/internal/api/handler"
	"github.com/shockbase/levelborder/internal/api/middleware"
	"github.com/shockbase/levelborder/internal/api/response"
	"github.com/shockbase/levelborder/internal/services/playerconfig"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	PlayerConfigService *playerconfig.Service
	DefaultMinRadius    int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerConfigService, cfg.Logger)
	borderHandler := handler.NewBorderHandler(cfg.DefaultMinRadius)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player documents
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Reset).Methods(http.MethodDelete)

	// Border sizing
	api.HandleFunc("/border/size", borderHandler.Size).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
