package handlers

import (
	"net/http"

	"github.com/sportsworldcentral/fantasy-api/services"
)

type LeagueHandler struct {
	leagueService services.LeagueService
}

func NewLeagueHandler(ls services.LeagueService) *LeagueHandler {
	return &LeagueHandler{
		leagueService: ls,
	}
}

// ListLeagues обрабатывает GET /v0/leagues
//
//	@Summary		Get leagues using query parameters to filter results
//	@Description	You can search for leagues with a minimum last changed date, or search for leagues by name.
//	@Tags			membership
//	@Produce		json
//	@Param			skip						query		int		false	"Number of records to skip for pagination"
//	@Param			limit						query		int		false	"The number of records to return after the skipped records"
//	@Param			minimum_last_changed_date	query		string	false	"The minimum last changed date of records to return (YYYY-MM-DD)"
//	@Param			league_name					query		string	false	"The name of the league to search for"
//	@Success		200							{array}		models.League
//	@Failure		400							{object}	map[string]string
//	@Router			/v0/leagues [get]
func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var params services.ListLeaguesParams
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

	params.LeagueName = parseOptionalString(query, "league_name")

	leagues, err := h.leagueService.ListLeagues(r.Context(), params)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, leagues, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetLeagueByID обрабатывает GET /v0/leagues/{leagueID}
//
//	@Summary		Get one league using the League ID, which is internal to SWC
//	@Description	If you have an SWC League ID of a league from another API call such as v0_get_leagues, you can call this API using the league ID. The response includes the teams in the league.
//	@Tags			membership
//	@Produce		json
//	@Param			leagueID	path		int	true	"League ID"
//	@Success		200			{object}	models.League
//	@Failure		404			{object}	map[string]string
//	@Router			/v0/leagues/{leagueID} [get]
func (h *LeagueHandler) GetLeagueByID(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.leagueService.GetLeagueByID(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, league, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
