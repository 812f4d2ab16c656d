package models

// Counts — сводные счётчики по таблицам лиг, команд и игроков.
type Counts struct {
	LeagueCount int `json:"league_count"`
	TeamCount   int `json:"team_count"`
	PlayerCount int `json:"player_count"`
}
