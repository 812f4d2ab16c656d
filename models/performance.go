package models

import "time"

// Performance — результат игрока за одну игровую неделю,
// включая фэнтези-очки по правилам скоринга SWC.
type Performance struct {
	PerformanceID   int       `json:"performance_id" db:"performance_id"`
	PlayerID        int       `json:"player_id" db:"player_id"`
	WeekNumber      string    `json:"week_number" db:"week_number"`
	FantasyPoints   float64   `json:"fantasy_points" db:"fantasy_points"`
	LastChangedDate time.Time `json:"last_changed_date" db:"last_changed_date"`
}
