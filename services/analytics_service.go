package services

import (
	"context"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/repositories"
	"golang.org/x/sync/errgroup"
)

type AnalyticsService interface {
	GetCounts(ctx context.Context) (*models.Counts, error)
}

type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
	}
}

// GetCounts выполняет три COUNT-запроса параллельно.
// Каждый запрос берёт своё соединение из пула и возвращает его по завершении.
func (s *analyticsService) GetCounts(ctx context.Context) (*models.Counts, error) {
	counts := &models.Counts{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.analyticsRepo.CountLeagues(gCtx)
		if err != nil {
			return err
		}
		counts.LeagueCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.analyticsRepo.CountTeams(gCtx)
		if err != nil {
			return err
		}
		counts.TeamCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.analyticsRepo.CountPlayers(gCtx)
		if err != nil {
			return err
		}
		counts.PlayerCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return counts, nil
}
