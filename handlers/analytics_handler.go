package handlers

import (
	"net/http"

	"github.com/sportsworldcentral/fantasy-api/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(as services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: as,
	}
}

// HealthCheck обрабатывает GET /
//
//	@Summary		API health check
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ [get]
func (h *AnalyticsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{"message": "API health check successful"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetCounts обрабатывает GET /v0/counts
//
//	@Summary		Get counts of leagues, teams, and players
//	@Description	You can get the counts of leagues, teams, and players in the database.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	models.Counts
//	@Router			/v0/counts [get]
func (h *AnalyticsHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.analyticsService.GetCounts(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, counts, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
