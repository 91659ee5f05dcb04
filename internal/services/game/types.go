package game

import (
	"github.com/nevix187/AmongUsIRL/internal/common/clock"
	"github.com/nevix187/AmongUsIRL/internal/common/uuid"
	"github.com/nevix187/AmongUsIRL/internal/gamecode"
	"github.com/nevix187/AmongUsIRL/internal/models"
	gameRepo "github.com/nevix187/AmongUsIRL/internal/repositories/game"
	"github.com/nevix187/AmongUsIRL/internal/roles"
)

// Default game settings, applied when a game is created without
// explicit overrides
const (
	DefaultDiscussionTime = 100
	DefaultVotingTime     = 40
	DefaultMaxMeetings    = 3

	// DefaultMinPlayers is the minimum lobby size required to start
	DefaultMinPlayers = 2
)

// Config holds configuration for the game service
type Config struct {
	// AdminPassword is the shared passphrase gating game creation and
	// destructive admin actions
	AdminPassword string

	// MinPlayers is the minimum number of players required to start a
	// game (defaults to DefaultMinPlayers)
	MinPlayers int

	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	CodeGenerator gamecode.Generator
	RoleAssignor  roles.Assignor
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// HostID identifies the admin creating the game
	HostID string

	// ImpostorCount is the number of impostors to assign at start
	ImpostorCount int

	// AdminPassword must match the configured passphrase
	AdminPassword string

	// Settings overrides the default game settings when non-nil
	Settings *models.GameSettings
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// JoinGameInput contains parameters for joining a game by code
type JoinGameInput struct {
	// GameCode is the player-facing join code
	GameCode string

	// PlayerName is the display name, unique within the game
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game   *models.Game
	Player *models.Player
}

// RemovePlayerInput contains parameters for removing a player pre-start
type RemovePlayerInput struct {
	GameID   string
	PlayerID string
}

// RemovePlayerOutput contains the result of removing a player
type RemovePlayerOutput struct {
	Game *models.Game
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game *models.Game
}

// ResetGameInput contains parameters for resetting a game to the lobby
type ResetGameInput struct {
	GameID string
}

// ResetGameOutput contains the result of resetting a game
type ResetGameOutput struct {
	Game *models.Game
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	GameID string
	Winner models.Winner
	Reason models.WinReason
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	Game *models.Game
}

// DeleteGameInput contains parameters for deleting a game outright
type DeleteGameInput struct {
	GameID string

	// AdminPassword must match the configured passphrase
	AdminPassword string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
}

// GetGameInput contains parameters for retrieving a game by ID
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the retrieved game
type GetGameOutput struct {
	Game *models.Game
}

// GetCurrentGameInput contains parameters for retrieving the game the
// current-game pointer designates
type GetCurrentGameInput struct {
}

// GetCurrentGameOutput contains the current game, nil when the pointer
// is unset or stale
type GetCurrentGameOutput struct {
	Game *models.Game
}

// GetGameByCodeInput contains parameters for retrieving a game by code
type GetGameByCodeInput struct {
	Code string
	Kind gameRepo.CodeKind
}

// GetGameByCodeOutput contains the retrieved game
type GetGameByCodeOutput struct {
	Game *models.Game
}

// RegisterDeviceInput contains parameters for registering a task station
type RegisterDeviceInput struct {
	// DeviceCode is the station-facing join code
	DeviceCode string

	Name     string
	Location string
}

// RegisterDeviceOutput contains the result of registering a device
type RegisterDeviceOutput struct {
	Game   *models.Game
	Device *models.Device
}

// DevicePatch is a merge-patch for a device: present fields replace the
// existing values, absent (nil) fields are preserved
type DevicePatch struct {
	Name     *string
	Location *string
}

// UpdateDeviceInput contains parameters for patching a device
type UpdateDeviceInput struct {
	GameID   string
	DeviceID string
	Patch    DevicePatch
}

// UpdateDeviceOutput contains the result of patching a device
type UpdateDeviceOutput struct {
	Game   *models.Game
	Device *models.Device
}

// AddTaskInput contains parameters for adding a task to a device
type AddTaskInput struct {
	GameID   string
	DeviceID string
	Name     string
}

// AddTaskOutput contains the result of adding a task
type AddTaskOutput struct {
	Game *models.Game
	Task *models.Task
}

// RemoveTaskInput contains parameters for removing a task from a device
type RemoveTaskInput struct {
	GameID   string
	DeviceID string
	TaskID   string
}

// RemoveTaskOutput contains the result of removing a task
type RemoveTaskOutput struct {
	Game *models.Game
}

// CompleteTaskInput contains parameters for completing a task
type CompleteTaskInput struct {
	GameID   string
	DeviceID string
	TaskID   string
}

// CompleteTaskOutput contains the result of completing a task
type CompleteTaskOutput struct {
	Game *models.Game
	Task *models.Task
}

// CallMeetingInput contains parameters for calling a meeting
type CallMeetingInput struct {
	GameID     string
	ReporterID string
	Type       models.MeetingType

	// ReportedPlayerID is the dead player for dead-body reports
	ReportedPlayerID string
}

// CallMeetingOutput contains the result of calling a meeting
type CallMeetingOutput struct {
	Game    *models.Game
	Meeting *models.Meeting
}

// SubmitVoteInput contains parameters for casting a ballot. The voter
// is an explicit parameter: votes are attributed to the acting voter,
// never to the meeting's reporter.
type SubmitVoteInput struct {
	GameID    string
	MeetingID string
	VoterID   string

	// TargetID is an alive player's ID or models.VoteTargetSkip
	TargetID string
}

// SubmitVoteOutput contains the result of casting a ballot
type SubmitVoteOutput struct {
	Game *models.Game
}

// AdvanceMeetingInput contains parameters for advancing the meeting
// through its timed phases
type AdvanceMeetingInput struct {
	GameID string
}

// AdvanceMeetingOutput contains the result of advancing the meeting
type AdvanceMeetingOutput struct {
	Game *models.Game

	// Resolved indicates the meeting reached results this call
	Resolved bool

	// EliminatedPlayerID is the player voted out, if any
	EliminatedPlayerID string

	// Skipped indicates the skip option won the vote
	Skipped bool

	// Tied indicates no plurality was reached
	Tied bool
}

// TriggerSabotageInput contains parameters for triggering a sabotage
type TriggerSabotageInput struct {
	GameID     string
	Type       models.SabotageType
	Message    string
	ImpostorID string
}

// TriggerSabotageOutput contains the result of triggering a sabotage
type TriggerSabotageOutput struct {
	Game     *models.Game
	Sabotage *models.SabotageEvent
}

// ExpireSabotageInput identifies one device's sabotage window by its
// activation timestamp; a stale timestamp is a no-op
type ExpireSabotageInput struct {
	GameID    string
	DeviceID  string
	Timestamp int64
}

// ExpireSabotageOutput contains the result of expiring a sabotage
type ExpireSabotageOutput struct {
	Game *models.Game

	// Expired indicates a sabotage was actually deactivated
	Expired bool
}

// ClearSabotageInput contains parameters for clearing all sabotages
type ClearSabotageInput struct {
	GameID string
}

// ClearSabotageOutput contains the result of clearing sabotages
type ClearSabotageOutput struct {
	Game *models.Game
}

// CheckWinConditionsInput contains parameters for the win evaluator
type CheckWinConditionsInput struct {
	GameID string
}

// CheckWinConditionsOutput contains the result of a win check
type CheckWinConditionsOutput struct {
	Game *models.Game

	// Ended indicates the game ended as a result of this check
	Ended bool

	// Result is the terminal outcome when Ended is true
	Result *models.GameResult
}
