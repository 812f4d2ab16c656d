package repositories

import (
	"context"
	"database/sql"
)

// AnalyticsRepository отдаёт полные счётчики строк по таблицам,
// без фильтров и пагинации.
type AnalyticsRepository interface {
	CountLeagues(ctx context.Context) (int, error)
	CountTeams(ctx context.Context) (int, error)
	CountPlayers(ctx context.Context) (int, error)
}

type postgresAnalyticsRepository struct {
	db *sql.DB
}

func NewPostgresAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &postgresAnalyticsRepository{db: db}
}

func (r *postgresAnalyticsRepository) CountLeagues(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM leagues`)
}

func (r *postgresAnalyticsRepository) CountTeams(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM teams`)
}

func (r *postgresAnalyticsRepository) CountPlayers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM players`)
}

func (r *postgresAnalyticsRepository) count(ctx context.Context, query string) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
