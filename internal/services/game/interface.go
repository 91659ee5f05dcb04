package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nevix187/AmongUsIRL/internal/services/game Service

import (
	"context"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// Service defines the interface for game state machine operations
type Service interface {
	// CreateGame creates a new game in the waiting state
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a waiting game by join code
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// RemovePlayer removes a player from a waiting game
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// StartGame assigns roles and moves the game to active
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// ResetGame returns a game to the lobby, clearing players, devices,
	// meeting and result
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// EndGame moves a game to ended with the given result, from any state
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// DeleteGame removes a game outright, gated by the admin password
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetCurrentGame retrieves the game the admin surface is managing
	GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error)

	// GetGameByCode retrieves a game by join code
	GetGameByCode(ctx context.Context, input *GetGameByCodeInput) (*GetGameByCodeOutput, error)

	// RegisterDevice adds a task station to a game by device code
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*RegisterDeviceOutput, error)

	// UpdateDevice applies a merge-patch to a device
	UpdateDevice(ctx context.Context, input *UpdateDeviceInput) (*UpdateDeviceOutput, error)

	// AddTask adds a task to a device
	AddTask(ctx context.Context, input *AddTaskInput) (*AddTaskOutput, error)

	// RemoveTask removes a task from a device
	RemoveTask(ctx context.Context, input *RemoveTaskInput) (*RemoveTaskOutput, error)

	// CompleteTask marks a task as done
	CompleteTask(ctx context.Context, input *CompleteTaskInput) (*CompleteTaskOutput, error)

	// CallMeeting opens a meeting and moves the game to the meeting state
	CallMeeting(ctx context.Context, input *CallMeetingInput) (*CallMeetingOutput, error)

	// SubmitVote casts a ballot in the active meeting's voting phase
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// AdvanceMeeting moves the meeting through its timed phases and
	// resolves it when voting closes
	AdvanceMeeting(ctx context.Context, input *AdvanceMeetingInput) (*AdvanceMeetingOutput, error)

	// TriggerSabotage broadcasts a sabotage onto every device
	TriggerSabotage(ctx context.Context, input *TriggerSabotageInput) (*TriggerSabotageOutput, error)

	// ExpireSabotage deactivates one device's sabotage window
	ExpireSabotage(ctx context.Context, input *ExpireSabotageInput) (*ExpireSabotageOutput, error)

	// ClearSabotage deactivates sabotage on every device
	ClearSabotage(ctx context.Context, input *ClearSabotageInput) (*ClearSabotageOutput, error)

	// CheckWinConditions evaluates the win conditions for an active game
	CheckWinConditions(ctx context.Context, input *CheckWinConditionsInput) (*CheckWinConditionsOutput, error)

	// WatchGames delivers the full game collection after every save
	WatchGames(ctx context.Context) (<-chan map[string]*models.Game, error)
}
