package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
)

type ListPerformancesFilter struct {
	PlayerID           *int
	MinLastChangedDate *time.Time
	Limit              int
	Offset             int
}

type PerformanceRepository interface {
	List(ctx context.Context, filter ListPerformancesFilter) ([]models.Performance, error)
}

type postgresPerformanceRepository struct {
	db *sql.DB
}

func NewPostgresPerformanceRepository(db *sql.DB) PerformanceRepository {
	return &postgresPerformanceRepository{db: db}
}

func (r *postgresPerformanceRepository) List(ctx context.Context, filter ListPerformancesFilter) ([]models.Performance, error) {
	query := `
		SELECT performance_id, player_id, week_number, fantasy_points, last_changed_date
		FROM performances
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.PlayerID != nil {
		query += fmt.Sprintf(" AND player_id = $%d", argID)
		args = append(args, *filter.PlayerID)
		argID++
	}
	if filter.MinLastChangedDate != nil {
		query += fmt.Sprintf(" AND last_changed_date >= $%d", argID)
		args = append(args, *filter.MinLastChangedDate)
		argID++
	}

	query += " ORDER BY performance_id"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performances := make([]models.Performance, 0)
	for rows.Next() {
		var p models.Performance
		if scanErr := rows.Scan(
			&p.PerformanceID, &p.PlayerID, &p.WeekNumber, &p.FantasyPoints, &p.LastChangedDate,
		); scanErr != nil {
			return nil, scanErr
		}
		performances = append(performances, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}
