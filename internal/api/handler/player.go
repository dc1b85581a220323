package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shockbase/levelborder/internal/api/response"
	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/services/playerconfig"
)

// PlayerHandler handles stored player documents
type PlayerHandler struct {
	configs *playerconfig.Service
	logger  *slog.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(configs *playerconfig.Service, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		configs: configs,
		logger:  logger,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.configs.PlayerIDs(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromIDs(ids))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.configs.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStateFromModel(id, state))
}

// Reset handles DELETE /api/v1/players/{id}. The player should be offline;
// host files are looked up under the stored over world.
func (h *PlayerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	report := h.configs.Reset(r.Context(), id, "")
	h.logger.Info("player reset via api",
		slog.String("player_id", id.String()),
		slog.Int("deleted", len(report.Deleted)),
	)

	response.JSON(w, http.StatusOK, response.ResetReportFromService(report))
}

func playerID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, model.ErrInvalidPlayerID
	}
	return id, nil
}
