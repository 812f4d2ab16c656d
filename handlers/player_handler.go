package handlers

import (
	"net/http"

	"github.com/sportsworldcentral/fantasy-api/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
	}
}

// ListPlayers обрабатывает GET /v0/players
//
//	@Summary		Get players using query parameters to filter results
//	@Description	You can search for players with a minimum last changed date, or search for players by first name or last name.
//	@Tags			player
//	@Produce		json
//	@Param			skip						query		int		false	"Number of records to skip for pagination"
//	@Param			limit						query		int		false	"The number of records to return after the skipped records"
//	@Param			minimum_last_changed_date	query		string	false	"The minimum last changed date of records to return (YYYY-MM-DD)"
//	@Param			first_name					query		string	false	"The first name of the player to search for"
//	@Param			last_name					query		string	false	"The last name of the player to search for"
//	@Success		200							{array}		models.Player
//	@Failure		400							{object}	map[string]string
//	@Router			/v0/players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var params services.ListPlayersParams
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

	params.FirstName = parseOptionalString(query, "first_name")
	params.LastName = parseOptionalString(query, "last_name")

	players, err := h.playerService.ListPlayers(r.Context(), params)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, players, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPlayerByID обрабатывает GET /v0/players/{playerID}
//
//	@Summary		Get one player using the Player ID, which is internal to SWC
//	@Description	If you have an SWC Player ID of a player from another API call such as v0_get_players, you can call this API using the player ID.
//	@Tags			player
//	@Produce		json
//	@Param			playerID	path		int	true	"Player ID"
//	@Success		200			{object}	models.Player
//	@Failure		404			{object}	map[string]string
//	@Router			/v0/players/{playerID} [get]
func (h *PlayerHandler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.GetPlayerByID(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
