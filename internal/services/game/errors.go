package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Precondition and lookup errors. These are structured outcomes for
// callers to branch on; transport and serialization faults from the
// repository are passed through on a separate channel (wrapped errors).
const (
	ErrGameNotFound          GameError = "game not found"
	ErrPlayerNotFound        GameError = "player not found"
	ErrDeviceNotFound        GameError = "device not found"
	ErrTaskNotFound          GameError = "task not found"
	ErrMeetingNotFound       GameError = "meeting not found"
	ErrInvalidGameState      GameError = "invalid game state for this operation"
	ErrInvalidAdminPassword  GameError = "invalid admin password"
	ErrInvalidImpostorCount  GameError = "impostor count must be at least 1"
	ErrNotEnoughPlayers      GameError = "not enough players to start"
	ErrTooManyImpostors      GameError = "impostor count must be less than player count"
	ErrDuplicatePlayerName   GameError = "a player with that name already joined"
	ErrMeetingNotActive      GameError = "meeting is not active"
	ErrMeetingNotInVoting    GameError = "meeting is not in the voting phase"
	ErrAlreadyVoted          GameError = "player already voted in this meeting"
	ErrInvalidVoteTarget     GameError = "vote target is not an alive player"
	ErrDeadPlayersCannotVote GameError = "dead players cannot vote"
	ErrMeetingLimitReached   GameError = "emergency meeting limit reached"
	ErrNotAnImpostor         GameError = "player is not an alive impostor"
	ErrSabotageActive        GameError = "tasks are blocked while a sabotage is active"
	ErrCodeCollision         GameError = "could not generate a unique join code"
	ErrNilConfig             GameError = "config cannot be nil"
	ErrNilGameRepo           GameError = "game repository cannot be nil"
	ErrNilClock              GameError = "clock cannot be nil"
	ErrNilUUIDGenerator      GameError = "UUID generator cannot be nil"
	ErrNilCodeGenerator      GameError = "code generator cannot be nil"
	ErrNilRoleAssignor       GameError = "role assignor cannot be nil"
)
