package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adrewards/internal/core/port"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorBody{Error: msg})
}

// internalError logs the failure and surfaces its message with a 500,
// matching the all-or-nothing contract: nothing is retried and the
// caller sees the underlying storage error.
func (h *Handler) internalError(w http.ResponseWriter, err error) {
	h.logger.Error("internal error", slog.Any("error", err))
	h.writeError(w, http.StatusInternalServerError, err.Error())
}

// writeUsecaseError maps the shared sentinel errors every surface can
// produce; handler-specific sentinels are mapped before calling this.
func (h *Handler) writeUsecaseError(w http.ResponseWriter, err error) {
	var ve port.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeError(w, http.StatusNotFound, "Campaign not found")
	default:
		h.internalError(w, err)
	}
}
