package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/services"
)

type stubLeagueService struct {
	gotParams services.ListLeaguesParams
	leagues   []models.League
	league    *models.League
	err       error
}

func (s *stubLeagueService) ListLeagues(_ context.Context, params services.ListLeaguesParams) ([]models.League, error) {
	s.gotParams = params
	return s.leagues, s.err
}

func (s *stubLeagueService) GetLeagueByID(_ context.Context, _ int) (*models.League, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.league, nil
}

func newLeagueRouter(h *LeagueHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/v0/leagues", func(r chi.Router) {
		r.Get("/", h.ListLeagues)
		r.Get("/{leagueID}", h.GetLeagueByID)
	})
	return router
}

func TestListLeaguesBindsLeagueName(t *testing.T) {
	svc := &stubLeagueService{leagues: []models.League{{LeagueID: 1, LeagueName: "AFC Legends", ScoringType: "PPR"}}}
	router := newLeagueRouter(NewLeagueHandler(svc))

	rr := serve(router, "/v0/leagues?league_name=AFC+Legends")
	require.Equal(t, http.StatusOK, rr.Code)

	require.NotNil(t, svc.gotParams.LeagueName)
	assert.Equal(t, "AFC Legends", *svc.gotParams.LeagueName)
}

func TestGetLeagueByIDIncludesTeams(t *testing.T) {
	svc := &stubLeagueService{league: &models.League{
		LeagueID:    1,
		LeagueName:  "AFC Legends",
		ScoringType: "PPR",
		Teams: []models.Team{
			{TeamID: 10, TeamName: "Crimson Crushers", LeagueID: 1},
		},
	}}
	router := newLeagueRouter(NewLeagueHandler(svc))

	rr := serve(router, "/v0/leagues/1")
	require.Equal(t, http.StatusOK, rr.Code)

	var league models.League
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &league))
	require.Len(t, league.Teams, 1)
	assert.Equal(t, "Crimson Crushers", league.Teams[0].TeamName)
}

func TestGetLeagueByIDNotFound(t *testing.T) {
	svc := &stubLeagueService{err: services.ErrLeagueNotFound}
	router := newLeagueRouter(NewLeagueHandler(svc))

	rr := serve(router, "/v0/leagues/404")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "League not found", body["detail"])
}
