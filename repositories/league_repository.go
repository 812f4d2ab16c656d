package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
)

var ErrLeagueNotFound = errors.New("league not found")

type ListLeaguesFilter struct {
	LeagueName         *string
	MinLastChangedDate *time.Time
	Limit              int
	Offset             int
}

type LeagueRepository interface {
	GetByID(ctx context.Context, id int) (*models.League, error)
	List(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error)
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id int) (*models.League, error) {
	query := `
		SELECT league_id, league_name, scoring_type, last_changed_date
		FROM leagues
		WHERE league_id = $1`

	l := &models.League{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.LeagueID, &l.LeagueName, &l.ScoringType, &l.LastChangedDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *postgresLeagueRepository) List(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error) {
	query := `
		SELECT league_id, league_name, scoring_type, last_changed_date
		FROM leagues
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.LeagueName != nil {
		query += fmt.Sprintf(" AND league_name = $%d", argID)
		args = append(args, *filter.LeagueName)
		argID++
	}
	if filter.MinLastChangedDate != nil {
		query += fmt.Sprintf(" AND last_changed_date >= $%d", argID)
		args = append(args, *filter.MinLastChangedDate)
		argID++
	}

	query += " ORDER BY league_id"

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

	leagues := make([]models.League, 0)
	for rows.Next() {
		var l models.League
		if scanErr := rows.Scan(
			&l.LeagueID, &l.LeagueName, &l.ScoringType, &l.LastChangedDate,
		); scanErr != nil {
			return nil, scanErr
		}
		leagues = append(leagues, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return leagues, nil
}
