package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
)

type ListTeamsFilter struct {
	TeamName           *string
	LeagueID           *int
	MinLastChangedDate *time.Time
	Limit              int
	Offset             int
}

type TeamRepository interface {
	List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error) {
	query := `
		SELECT team_id, team_name, league_id, last_changed_date
		FROM teams
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.TeamName != nil {
		query += fmt.Sprintf(" AND team_name = $%d", argID)
		args = append(args, *filter.TeamName)
		argID++
	}
	if filter.LeagueID != nil {
		query += fmt.Sprintf(" AND league_id = $%d", argID)
		args = append(args, *filter.LeagueID)
		argID++
	}
	if filter.MinLastChangedDate != nil {
		query += fmt.Sprintf(" AND last_changed_date >= $%d", argID)
		args = append(args, *filter.MinLastChangedDate)
		argID++
	}

	query += " ORDER BY team_id"

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

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if scanErr := rows.Scan(
			&t.TeamID, &t.TeamName, &t.LeagueID, &t.LastChangedDate,
		); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}
