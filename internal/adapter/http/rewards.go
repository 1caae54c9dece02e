package httpadapter

import (
	"net/http"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// rewardsSummaryResponse combines earnings totals with level progress.
type rewardsSummaryResponse struct {
	*port.RewardSummary
	Level domain.LevelProgress `json:"level"`
}

// handleRewardsSummary returns the authenticated user's lifetime and
// today's earnings plus their level on the reward ladder.
func (h *Handler) handleRewardsSummary(w http.ResponseWriter, r *http.Request) {
	user := identityFrom(r.Context())
	summary, level, err := h.rewards.Summary(r.Context(), user.ID)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rewardsSummaryResponse{
		RewardSummary: summary,
		Level:         *level,
	})
}

// handleClickHistory returns the authenticated user's clicks newest
// first.
func (h *Handler) handleClickHistory(w http.ResponseWriter, r *http.Request) {
	user := identityFrom(r.Context())
	limit, offset := pagination(r)
	clicks, err := h.rewards.History(r.Context(), user.ID, limit, offset)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}
	if clicks == nil {
		clicks = []domain.Click{}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"clicks": clicks})
}
