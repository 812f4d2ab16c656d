package models

import "time"

// Player представляет игрока NFL, отслеживаемого платформой SWC.
type Player struct {
	PlayerID        int       `json:"player_id" db:"player_id"`
	GsisID          string    `json:"gsis_id" db:"gsis_id"`
	FirstName       string    `json:"first_name" db:"first_name"`
	LastName        string    `json:"last_name" db:"last_name"`
	Position        string    `json:"position" db:"position"`
	LastChangedDate time.Time `json:"last_changed_date" db:"last_changed_date"`
}
