package models

import "time"

// League представляет фэнтези-лигу SWC.
type League struct {
	LeagueID        int       `json:"league_id" db:"league_id"`
	LeagueName      string    `json:"league_name" db:"league_name"`
	ScoringType     string    `json:"scoring_type" db:"scoring_type"`
	LastChangedDate time.Time `json:"last_changed_date" db:"last_changed_date"`

	Teams []Team `json:"teams,omitempty" db:"-"`
}
