package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nevix187/AmongUsIRL/internal/repositories/game Repository

import (
	"context"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// Repository defines the interface for game data persistence. It is the
// sole persistence and synchronization boundary the game logic depends
// on: writes are last-write-wins whole-aggregate replacements, and every
// successful save is broadcast to subscribers, including saves made by
// other processes.
type Repository interface {
	// SaveGame persists a game, refreshing its last-modified marker
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// FindGameByCode retrieves a game by join code (case-insensitive)
	FindGameByCode(ctx context.Context, input *FindGameByCodeInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// ListGames retrieves the full game collection
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// SetCurrentGame updates the current-game pointer (empty clears it)
	SetCurrentGame(ctx context.Context, input *SetCurrentGameInput) error

	// GetCurrentGame reads the current-game pointer
	GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error)

	// Subscribe delivers the full updated collection after every save
	// until ctx is cancelled
	Subscribe(ctx context.Context) (<-chan map[string]*models.Game, error)
}
