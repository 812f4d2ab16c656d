package services

import (
	"context"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
	"github.com/sportsworldcentral/fantasy-api/repositories"
)

type ListPerformancesParams struct {
	Skip               *int
	Limit              *int
	MinLastChangedDate *time.Time
	PlayerID           *int
}

type PerformanceService interface {
	ListPerformances(ctx context.Context, params ListPerformancesParams) ([]models.Performance, error)
}

type performanceService struct {
	performanceRepo repositories.PerformanceRepository
}

func NewPerformanceService(performanceRepo repositories.PerformanceRepository) PerformanceService {
	return &performanceService{
		performanceRepo: performanceRepo,
	}
}

func (s *performanceService) ListPerformances(ctx context.Context, params ListPerformancesParams) ([]models.Performance, error) {
	offset, limit := normalizePagination(params.Skip, params.Limit)

	return s.performanceRepo.List(ctx, repositories.ListPerformancesFilter{
		PlayerID:           params.PlayerID,
		MinLastChangedDate: params.MinLastChangedDate,
		Limit:              limit,
		Offset:             offset,
	})
}
