package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adrewards/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the usecases executing
// business logic and a logger for structured logging; routes are
// registered on a chi.Router.
type Handler struct {
	clicks    port.ClickRecorder
	auth      port.Authenticator
	campaigns port.CampaignManager
	rewards   port.RewardsReader
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Click
// recording, history and the rewards summary require a bearer token;
// the campaign and stats surface additionally requires the admin role.
func NewHandler(clicks port.ClickRecorder, auth port.Authenticator, campaigns port.CampaignManager, rewards port.RewardsReader, logger *slog.Logger) *Handler {
	h := &Handler{
		clicks:    clicks,
		auth:      auth,
		campaigns: campaigns,
		rewards:   rewards,
		logger:    logger,
	}
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Post("/clicks", h.handleRecordClick)
			r.Get("/clicks", h.handleClickHistory)
			r.Get("/rewards/summary", h.handleRewardsSummary)

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Post("/campaigns", h.handleCreateCampaign)
				r.Get("/campaigns", h.handleListCampaigns)
				r.Get("/campaigns/{id}", h.handleGetCampaign)
				r.Put("/campaigns/{id}", h.handleUpdateCampaign)
				r.Patch("/campaigns/{id}/status", h.handleCampaignStatus)
				r.Get("/stats/overview", h.handleStatsOverview)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
