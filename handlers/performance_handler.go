package handlers

import (
	"net/http"

	"github.com/sportsworldcentral/fantasy-api/services"
)

type PerformanceHandler struct {
	performanceService services.PerformanceService
}

func NewPerformanceHandler(ps services.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: ps,
	}
}

// ListPerformances обрабатывает GET /v0/performances
//
//	@Summary		Get player performances using query parameters to filter results
//	@Description	You can search for performances with a minimum last changed date, or search for performances by player_id.
//	@Tags			scoring
//	@Produce		json
//	@Param			skip						query		int		false	"Number of records to skip for pagination"
//	@Param			limit						query		int		false	"The number of records to return after the skipped records"
//	@Param			minimum_last_changed_date	query		string	false	"The minimum last changed date of records to return (YYYY-MM-DD)"
//	@Param			player_id					query		int		false	"The SWC player ID to filter performances by"
//	@Success		200							{array}		models.Performance
//	@Failure		400							{object}	map[string]string
//	@Router			/v0/performances [get]
func (h *PerformanceHandler) ListPerformances(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var params services.ListPerformancesParams
	var err error

	params.Skip, params.Limit, err = parsePagination(query)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	params.MinLastChangedDate, err = parseOptionalDate(query, "minimum_last_changed_date")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	params.PlayerID, err = parseOptionalInt(query, "player_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	performances, err := h.performanceService.ListPerformances(r.Context(), params)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, performances, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
