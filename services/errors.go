package services

import "errors"

// Ошибки сервисного слоя, маппятся на HTTP-статусы в handlers.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrLeagueNotFound = errors.New("league not found")
)
