package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sportsworldcentral/fantasy-api/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type ListPlayersFilter struct {
	FirstName          *string
	LastName           *string
	MinLastChangedDate *time.Time
	Limit              int
	Offset             int
}

type PlayerRepository interface {
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT player_id, gsis_id, first_name, last_name, position, last_changed_date
		FROM players
		WHERE player_id = $1`

	p := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.PlayerID, &p.GsisID, &p.FirstName, &p.LastName, &p.Position, &p.LastChangedDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error) {
	query := `
		SELECT player_id, gsis_id, first_name, last_name, position, last_changed_date
		FROM players
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.FirstName != nil {
		query += fmt.Sprintf(" AND first_name = $%d", argID)
		args = append(args, *filter.FirstName)
		argID++
	}
	if filter.LastName != nil {
		query += fmt.Sprintf(" AND last_name = $%d", argID)
		args = append(args, *filter.LastName)
		argID++
	}
	if filter.MinLastChangedDate != nil {
		query += fmt.Sprintf(" AND last_changed_date >= $%d", argID)
		args = append(args, *filter.MinLastChangedDate)
		argID++
	}

	// Стабильный порядок по первичному ключу, чтобы страницы не пересекались.
	query += " ORDER BY player_id"

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

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(
			&p.PlayerID, &p.GsisID, &p.FirstName, &p.LastName, &p.Position, &p.LastChangedDate,
		); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}
