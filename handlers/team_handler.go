package handlers

import (
	"net/http"

	"github.com/sportsworldcentral/fantasy-api/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: ts,
	}
}

// ListTeams обрабатывает GET /v0/teams
//
//	@Summary		Get teams using query parameters to filter results
//	@Description	You can search for teams with a minimum last changed date, or search for teams by name or league_id.
//	@Tags			membership
//	@Produce		json
//	@Param			skip						query		int		false	"Number of records to skip for pagination"
//	@Param			limit						query		int		false	"The number of records to return after the skipped records"
//	@Param			minimum_last_changed_date	query		string	false	"The minimum last changed date of records to return (YYYY-MM-DD)"
//	@Param			team_name					query		string	false	"The name of the team to search for"
//	@Param			league_id					query		int		false	"The league ID of the teams to search for"
//	@Success		200							{array}		models.Team
//	@Failure		400							{object}	map[string]string
//	@Router			/v0/teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var params services.ListTeamsParams
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

	params.TeamName = parseOptionalString(query, "team_name")

	params.LeagueID, err = parseOptionalInt(query, "league_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.teamService.ListTeams(r.Context(), params)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
