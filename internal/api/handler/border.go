package handler

import (
	"net/http"
	"strconv"

	"github.com/shockbase/levelborder/internal/api/response"
	"github.com/shockbase/levelborder/internal/services/border"
)

// BorderHandler exposes the border sizing formula
type BorderHandler struct {
	defaultMinRadius int
}

// NewBorderHandler creates a new border handler
func NewBorderHandler(defaultMinRadius int) *BorderHandler {
	return &BorderHandler{
		defaultMinRadius: defaultMinRadius,
	}
}

// Size handles GET /api/v1/border/size?level=&min_radius=
func (h *BorderHandler) Size(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	level, err := strconv.Atoi(query.Get("level"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("level must be an integer"))
		return
	}

	minRadius := h.defaultMinRadius
	if raw := query.Get("min_radius"); raw != "" {
		minRadius, err = strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("min_radius must be an integer"))
			return
		}
	}

	response.JSON(w, http.StatusOK, response.BorderSize{
		Level:     level,
		MinRadius: minRadius,
		Size:      border.Size(level, minRadius),
	})
}
