package services

import (
	"context"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/repositories"
)

type ListTeamsParams struct {
	Skip               *int
	Limit              *int
	MinLastChangedDate *time.Time
	TeamName           *string
	LeagueID           *int
}

type TeamService interface {
	ListTeams(ctx context.Context, params ListTeamsParams) ([]models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
	}
}

func (s *teamService) ListTeams(ctx context.Context, params ListTeamsParams) ([]models.Team, error) {
	offset, limit := normalizePagination(params.Skip, params.Limit)

	return s.teamRepo.List(ctx, repositories.ListTeamsFilter{
		TeamName:           params.TeamName,
		LeagueID:           params.LeagueID,
		MinLastChangedDate: params.MinLastChangedDate,
		Limit:              limit,
		Offset:             offset,
	})
}
