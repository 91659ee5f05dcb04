package models

import (
	"time"
)

// PlayerRole is the secret role assigned to a player at game start
type PlayerRole string

const (
	// RoleImpostor marks a player as an impostor
	RoleImpostor PlayerRole = "impostor"

	// RoleCrewmate marks a player as a crewmate
	RoleCrewmate PlayerRole = "crewmate"
)

// VoteTargetSkip is the sentinel target for a skipped vote
const VoteTargetSkip = "skip"

// Player represents a person in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name, unique within a game (case-sensitive)
	Name string `json:"name"`

	// Role is empty while the game is waiting
	Role PlayerRole `json:"role,omitempty"`

	// IsAlive is false once the player has been eliminated
	IsAlive bool `json:"isAlive"`

	// VotedFor is the player's last vote target, if any
	VotedFor string `json:"votedFor,omitempty"`

	// JoinedAt is when the player joined the lobby
	JoinedAt time.Time `json:"joinedAt"`
}
