package httpadapter

import (
	"net/http"
	"time"

	"adrewards/internal/core/port"
)

// handleStatsOverview returns aggregated click counts and reward spend
// over a period. It accepts optional `from`, `to` (RFC3339 timestamps)
// and `campaign_id` query parameters; with no period given it covers
// the last 24 hours. Invalid timestamps produce HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'from' timestamp")
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'to' timestamp")
			return
		}
	} else {
		req.To = time.Now()
	}

	if cid := q.Get("campaign_id"); cid != "" {
		req.CampaignID = &cid
	}

	stats, err := h.campaigns.Stats(r.Context(), req)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
