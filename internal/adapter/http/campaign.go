package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// handleCreateCampaign creates a campaign from the admin dashboard.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.campaigns.Create(r.Context(), req)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleListCampaigns returns campaigns newest first with limit/offset
// pagination.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	list, err := h.campaigns.List(r.Context(), limit, offset)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"campaigns": list})
}

// handleGetCampaign returns one campaign by its path id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleUpdateCampaign applies a partial update to a campaign.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleCampaignStatus switches a campaign's status.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.CampaignStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.campaigns.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// pagination parses limit/offset query parameters; invalid values fall
// back to the usecase defaults.
func pagination(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	return limit, offset
}
