package services

import (
	"context"
	"errors"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/repositories"
)

type ListPlayersParams struct {
	Skip               *int
	Limit              *int
	MinLastChangedDate *time.Time
	FirstName          *string
	LastName           *string
}

type PlayerService interface {
	ListPlayers(ctx context.Context, params ListPlayersParams) ([]models.Player, error)
	GetPlayerByID(ctx context.Context, playerID int) (*models.Player, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

func (s *playerService) ListPlayers(ctx context.Context, params ListPlayersParams) ([]models.Player, error) {
	offset, limit := normalizePagination(params.Skip, params.Limit)

	return s.playerRepo.List(ctx, repositories.ListPlayersFilter{
		FirstName:          params.FirstName,
		LastName:           params.LastName,
		MinLastChangedDate: params.MinLastChangedDate,
		Limit:              limit,
		Offset:             offset,
	})
}

func (s *playerService) GetPlayerByID(ctx context.Context, playerID int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}
