package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/services"
)

type stubPlayerService struct {
	gotParams services.ListPlayersParams
	players   []models.Player
	player    *models.Player
	err       error
}

func (s *stubPlayerService) ListPlayers(_ context.Context, params services.ListPlayersParams) ([]models.Player, error) {
	s.gotParams = params
	return s.players, s.err
}

func (s *stubPlayerService) GetPlayerByID(_ context.Context, _ int) (*models.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.player, nil
}

func newPlayerRouter(h *PlayerHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/v0/players", func(r chi.Router) {
		r.Get("/", h.ListPlayers)
		r.Get("/{playerID}", h.GetPlayerByID)
	})
	return router
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListPlayersBindsQueryParams(t *testing.T) {
	svc := &stubPlayerService{players: []models.Player{{PlayerID: 1, FirstName: "Tom", LastName: "Brady"}}}
	router := newPlayerRouter(NewPlayerHandler(svc))

	rr := serve(router, "/v0/players?skip=5&limit=10&first_name=Tom&last_name=Brady&minimum_last_changed_date=2024-01-01")
	require.Equal(t, http.StatusOK, rr.Code)

	require.NotNil(t, svc.gotParams.Skip)
	assert.Equal(t, 5, *svc.gotParams.Skip)
	require.NotNil(t, svc.gotParams.Limit)
	assert.Equal(t, 10, *svc.gotParams.Limit)
	require.NotNil(t, svc.gotParams.FirstName)
	assert.Equal(t, "Tom", *svc.gotParams.FirstName)
	require.NotNil(t, svc.gotParams.LastName)
	assert.Equal(t, "Brady", *svc.gotParams.LastName)
	require.NotNil(t, svc.gotParams.MinLastChangedDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *svc.gotParams.MinLastChangedDate)

	var players []models.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "Brady", players[0].LastName)
}

func TestListPlayersOmittedParamsStayNil(t *testing.T) {
	svc := &stubPlayerService{players: []models.Player{}}
	router := newPlayerRouter(NewPlayerHandler(svc))

	rr := serve(router, "/v0/players")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Nil(t, svc.gotParams.Skip)
	assert.Nil(t, svc.gotParams.Limit)
	assert.Nil(t, svc.gotParams.FirstName)
	assert.Nil(t, svc.gotParams.LastName)
	assert.Nil(t, svc.gotParams.MinLastChangedDate)

	// Пустой результат сериализуется как [], а не null.
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestListPlayersRejectsMalformedParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric skip", "/v0/players?skip=abc"},
		{"negative skip", "/v0/players?skip=-1"},
		{"zero limit", "/v0/players?limit=0"},
		{"negative limit", "/v0/players?limit=-5"},
		{"malformed date", "/v0/players?minimum_last_changed_date=01-01-2024"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubPlayerService{}
			router := newPlayerRouter(NewPlayerHandler(svc))

			rr := serve(router, tc.target)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetPlayerByID(t *testing.T) {
	svc := &stubPlayerService{player: &models.Player{PlayerID: 42, FirstName: "Patrick", LastName: "Mahomes"}}
	router := newPlayerRouter(NewPlayerHandler(svc))

	rr := serve(router, "/v0/players/42")
	require.Equal(t, http.StatusOK, rr.Code)

	var player models.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, 42, player.PlayerID)
	assert.Equal(t, "Mahomes", player.LastName)
}

func TestGetPlayerByIDNotFound(t *testing.T) {
	svc := &stubPlayerService{err: services.ErrPlayerNotFound}
	router := newPlayerRouter(NewPlayerHandler(svc))

	rr := serve(router, "/v0/players/9999")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Player not found", body["detail"])
}

func TestGetPlayerByIDRejectsNonNumericID(t *testing.T) {
	svc := &stubPlayerService{}
	router := newPlayerRouter(NewPlayerHandler(svc))

	rr := serve(router, "/v0/players/abc")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
