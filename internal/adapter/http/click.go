package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// clickRequest is the click endpoint's body. userAgent and ipAddress
// are optional; the request headers fill them in when absent.
type clickRequest struct {
	CampaignID string `json:"campaignId"`
	UserAgent  string `json:"userAgent"`
	IPAddress  string `json:"ipAddress"`
}

// clickResponse is the success body of the click endpoint.
type clickResponse struct {
	Success bool          `json:"success"`
	Click   *domain.Click `json:"click"`
	Reward  int64         `json:"reward"`
}

// handleRecordClick records a rewarded click for the authenticated
// user. Gate failures are reported with the exact messages the client
// apps match on; unexpected storage failures surface as 500 with the
// underlying message.
func (h *Handler) handleRecordClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.CampaignID) == "" {
		h.writeError(w, http.StatusBadRequest, "Campaign ID is required")
		return
	}

	// body fields first, then request headers, then "unknown"
	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = r.Header.Get("User-Agent")
	}
	if userAgent == "" {
		userAgent = "unknown"
	}
	ipAddress := req.IPAddress
	if ipAddress == "" {
		ipAddress = r.Header.Get("X-Forwarded-For")
	}
	if ipAddress == "" {
		ipAddress = "unknown"
	}

	user := identityFrom(r.Context())
	click, err := h.clicks.Record(r.Context(), port.RecordClickRequest{
		UserID:     user.ID,
		CampaignID: req.CampaignID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
	if err != nil {
		switch {
		case errors.Is(err, port.ErrCampaignNotFound):
			h.writeError(w, http.StatusNotFound, "Campaign not found")
		case errors.Is(err, port.ErrCampaignInactive):
			h.writeError(w, http.StatusBadRequest, "Campaign is not active")
		case errors.Is(err, port.ErrDuplicateClick):
			h.writeError(w, http.StatusBadRequest, "Already clicked this campaign today")
		case errors.Is(err, port.ErrBudgetExceeded):
			h.writeError(w, http.StatusBadRequest, "Campaign daily budget exceeded")
		default:
			h.internalError(w, err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, clickResponse{
		Success: true,
		Click:   click,
		Reward:  click.RewardAmount,
	})
}
