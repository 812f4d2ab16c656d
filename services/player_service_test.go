package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/repositories"
)

// fakePlayerRepo применяет фильтр к срезу в памяти так же,
// как Postgres применил бы его к таблице.
type fakePlayerRepo struct {
	players   []models.Player
	gotFilter repositories.ListPlayersFilter
}

func (f *fakePlayerRepo) List(_ context.Context, filter repositories.ListPlayersFilter) ([]models.Player, error) {
	f.gotFilter = filter

	matched := make([]models.Player, 0)
	for _, p := range f.players {
		if filter.FirstName != nil && p.FirstName != *filter.FirstName {
			continue
		}
		if filter.LastName != nil && p.LastName != *filter.LastName {
			continue
		}
		if filter.MinLastChangedDate != nil && p.LastChangedDate.Before(*filter.MinLastChangedDate) {
			continue
		}
		matched = append(matched, p)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []models.Player{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	for _, p := range f.players {
		if p.PlayerID == id {
			player := p
			return &player, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func seedPlayers(n int) []models.Player {
	players := make([]models.Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, models.Player{
			PlayerID:        i,
			FirstName:       fmt.Sprintf("First%d", i),
			LastName:        fmt.Sprintf("Last%d", i),
			Position:        "QB",
			LastChangedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		})
	}
	return players
}

func TestListPlayersAppliesDefaultSkipAndLimit(t *testing.T) {
	repo := &fakePlayerRepo{players: seedPlayers(150)}
	svc := NewPlayerService(repo)

	players, err := svc.ListPlayers(context.Background(), ListPlayersParams{})
	require.NoError(t, err)

	assert.Len(t, players, 100)
	assert.Equal(t, 1, players[0].PlayerID)
	assert.Equal(t, 100, repo.gotFilter.Limit)
	assert.Equal(t, 0, repo.gotFilter.Offset)
}

func TestListPlayersPaginationWindows(t *testing.T) {
	repo := &fakePlayerRepo{players: seedPlayers(150)}
	svc := NewPlayerService(repo)
	ctx := context.Background()

	limit := 100
	skip0, skip1 := 0, 100

	page1, err := svc.ListPlayers(ctx, ListPlayersParams{Skip: &skip0, Limit: &limit})
	require.NoError(t, err)
	page2, err := svc.ListPlayers(ctx, ListPlayersParams{Skip: &skip1, Limit: &limit})
	require.NoError(t, err)

	require.Len(t, page1, 100)
	require.Len(t, page2, 50)

	// Конкатенация страниц воспроизводит полный список без дублей и пропусков.
	seen := make(map[int]bool)
	for i, p := range append(page1, page2...) {
		assert.Equal(t, i+1, p.PlayerID)
		assert.False(t, seen[p.PlayerID])
		seen[p.PlayerID] = true
	}
	assert.Len(t, seen, 150)
}

func TestListPlayersFiltersCompose(t *testing.T) {
	players := seedPlayers(10)
	players[3].FirstName = "Tom"
	players[3].LastName = "Brady"
	repo := &fakePlayerRepo{players: players}
	svc := NewPlayerService(repo)

	first := "Tom"
	last := "Brady"
	got, err := svc.ListPlayers(context.Background(), ListPlayersParams{
		FirstName: &first,
		LastName:  &last,
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].PlayerID)
}

func TestListPlayersMinLastChangedDateInclusive(t *testing.T) {
	repo := &fakePlayerRepo{players: seedPlayers(10)}
	svc := NewPlayerService(repo)

	// Граница совпадает с last_changed_date пятого игрока — он должен войти.
	minDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 5)
	got, err := svc.ListPlayers(context.Background(), ListPlayersParams{MinLastChangedDate: &minDate})
	require.NoError(t, err)

	require.Len(t, got, 6)
	assert.Equal(t, 5, got[0].PlayerID)
}

func TestGetPlayerByIDNotFound(t *testing.T) {
	repo := &fakePlayerRepo{players: seedPlayers(3)}
	svc := NewPlayerService(repo)

	player, err := svc.GetPlayerByID(context.Background(), 9999)

	assert.Nil(t, player)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestGetPlayerByIDFound(t *testing.T) {
	repo := &fakePlayerRepo{players: seedPlayers(3)}
	svc := NewPlayerService(repo)

	player, err := svc.GetPlayerByID(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, player.PlayerID)
}
