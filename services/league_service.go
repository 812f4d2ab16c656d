package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/repositories"
)

type ListLeaguesParams struct {
	Skip               *int
	Limit              *int
	MinLastChangedDate *time.Time
	LeagueName         *string
}

type LeagueService interface {
	ListLeagues(ctx context.Context, params ListLeaguesParams) ([]models.League, error)
	GetLeagueByID(ctx context.Context, leagueID int) (*models.League, error)
}

type leagueService struct {
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
}

func NewLeagueService(
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
) LeagueService {
	return &leagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

func (s *leagueService) ListLeagues(ctx context.Context, params ListLeaguesParams) ([]models.League, error) {
	offset, limit := normalizePagination(params.Skip, params.Limit)

	return s.leagueRepo.List(ctx, repositories.ListLeaguesFilter{
		LeagueName:         params.LeagueName,
		MinLastChangedDate: params.MinLastChangedDate,
		Limit:              limit,
		Offset:             offset,
	})
}

// GetLeagueByID возвращает лигу вместе со всеми её командами.
func (s *leagueService) GetLeagueByID(ctx context.Context, leagueID int) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx, repositories.ListTeamsFilter{
		LeagueID: &leagueID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for league %d: %w", leagueID, err)
	}
	league.Teams = teams

	return league, nil
}
