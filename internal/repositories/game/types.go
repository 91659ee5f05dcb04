package game

import "github.com/nevix187/AmongUsIRL/internal/models"

// CodeKind selects which join code FindGameByCode matches against
type CodeKind string

const (
	// CodeKindGame matches the player-facing session code
	CodeKindGame CodeKind = "game"

	// CodeKindDevice matches the station-facing device code
	CodeKindDevice CodeKind = "device"
)

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type FindGameByCodeInput struct {
	Code string
	Kind CodeKind
}

type DeleteGameInput struct {
	GameID string
}

type ListGamesInput struct {
}

type ListGamesOutput struct {
	Games map[string]*models.Game
}

type SetCurrentGameInput struct {
	GameID string
}

type GetCurrentGameInput struct {
}

type GetCurrentGameOutput struct {
	GameID string
}
