package models

import "time"

// Team представляет команду внутри фэнтези-лиги.
type Team struct {
	TeamID          int       `json:"team_id" db:"team_id"`
	TeamName        string    `json:"team_name" db:"team_name"`
	LeagueID        int       `json:"league_id" db:"league_id"`
	LastChangedDate time.Time `json:"last_changed_date" db:"last_changed_date"`
}
