package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game is in the lobby, waiting for players to join
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusMeeting indicates a meeting is in progress
	GameStatusMeeting GameStatus = "meeting"

	// GameStatusEnded indicates a game has ended with a result
	GameStatusEnded GameStatus = "ended"
)

// Winner identifies the winning faction of a game
type Winner string

const (
	// WinnerCrewmates indicates the crewmates won
	WinnerCrewmates Winner = "crewmates"

	// WinnerImpostors indicates the impostors won
	WinnerImpostors Winner = "impostors"
)

// WinReason explains why a game ended
type WinReason string

const (
	// WinReasonTasksCompleted indicates all tasks were completed
	WinReasonTasksCompleted WinReason = "tasks_completed"

	// WinReasonImpostorsEliminated indicates all impostors were voted out
	WinReasonImpostorsEliminated WinReason = "impostors_eliminated"

	// WinReasonImpostorsMajority indicates impostors reached parity with crewmates
	WinReasonImpostorsMajority WinReason = "impostors_majority"

	// WinReasonTimeExpired indicates the game clock ran out
	WinReasonTimeExpired WinReason = "time_expired"

	// WinReasonManualEnd indicates an admin ended the game directly
	WinReasonManualEnd WinReason = "manual_end"
)

// GameSettings holds the tunable parameters of a game. Settings are
// frozen once the game leaves the waiting state.
type GameSettings struct {
	// DiscussionTime is the meeting discussion phase length in seconds
	DiscussionTime int `json:"discussionTime"`

	// VotingTime is the meeting voting phase length in seconds
	VotingTime int `json:"votingTime"`

	// MaxMeetings caps the number of emergency meetings per game
	MaxMeetings int `json:"maxMeetings"`
}

// GameResult records the terminal outcome of a game
type GameResult struct {
	// Winner is the faction that won
	Winner Winner `json:"winner"`

	// Reason explains why the game ended
	Reason WinReason `json:"reason"`

	// EndedAt is when the game ended
	EndedAt time.Time `json:"endedAt"`
}

// Game is the aggregate root for a single session. It exclusively owns
// its players, devices (which own tasks and at most one sabotage), and
// the current meeting. The store holds the canonical copy; all game
// logic operates on snapshots and submits whole-aggregate replacements.
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// GameCode is the player-facing join code ("S" prefix)
	GameCode string `json:"gameCode"`

	// DeviceCode is the station-facing join code ("G" prefix)
	DeviceCode string `json:"deviceCode"`

	// HostID identifies the admin who created the game
	HostID string `json:"hostId"`

	// ImpostorCount is the number of impostors assigned at start
	ImpostorCount int `json:"impostorCount"`

	// Players are the people in the game, in join order
	Players []*Player `json:"players"`

	// Devices are the registered task stations, in connect order
	Devices []*Device `json:"devices"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// MeetingsCalled counts the emergency meetings called this game
	MeetingsCalled int `json:"meetingsCalled"`

	// CreatedAt doubles as the last-modified marker; the store
	// refreshes it on every save and uses it for retention
	CreatedAt time.Time `json:"createdAt"`

	// StartedAt is when the game left the waiting state
	StartedAt *time.Time `json:"startedAt,omitempty"`

	// Meeting is the current meeting, if any
	Meeting *Meeting `json:"meeting,omitempty"`

	// Result is the terminal outcome, if the game has ended
	Result *GameResult `json:"result,omitempty"`

	// Settings are the game parameters, immutable once started
	Settings GameSettings `json:"settings"`
}

// FindPlayer returns the player with the given ID, or nil
func (g *Game) FindPlayer(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// FindDevice returns the device with the given ID, or nil
func (g *Game) FindDevice(deviceID string) *Device {
	for _, d := range g.Devices {
		if d.ID == deviceID {
			return d
		}
	}
	return nil
}

// AlivePlayers returns the players that are still alive
func (g *Game) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.IsAlive {
			alive = append(alive, p)
		}
	}
	return alive
}
