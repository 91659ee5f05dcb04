package models

import (
	"time"
)

// MeetingType distinguishes how a meeting was called
type MeetingType string

const (
	// MeetingTypeEmergency indicates a player pressed the emergency button
	MeetingTypeEmergency MeetingType = "emergency"

	// MeetingTypeDeadBody indicates a player reported a dead body
	MeetingTypeDeadBody MeetingType = "dead_body"
)

// MeetingPhase is the stage a meeting is currently in
type MeetingPhase string

const (
	// MeetingPhaseDiscussion is the talking phase before voting opens
	MeetingPhaseDiscussion MeetingPhase = "discussion"

	// MeetingPhaseVoting is the phase where votes are collected
	MeetingPhaseVoting MeetingPhase = "voting"

	// MeetingPhaseResults is the terminal phase after tallying
	MeetingPhaseResults MeetingPhase = "results"
)

// Vote is a single ballot cast during a meeting's voting phase
type Vote struct {
	// PlayerID is the voter
	PlayerID string `json:"playerId"`

	// TargetID is a player ID or VoteTargetSkip
	TargetID string `json:"targetId"`

	// Timestamp is when the vote was cast
	Timestamp time.Time `json:"timestamp"`
}

// Meeting is a timed discussion-then-voting interlude
type Meeting struct {
	// ID is the unique identifier for the meeting
	ID string `json:"id"`

	// Type is how the meeting was called
	Type MeetingType `json:"type"`

	// ReporterID is the player who called the meeting
	ReporterID string `json:"reporterId"`

	// ReportedPlayerID is the dead player, for dead-body reports
	ReportedPlayerID string `json:"reportedPlayerId,omitempty"`

	// DiscussionEndsAt is when the discussion phase closes
	DiscussionEndsAt time.Time `json:"discussionEndsAt"`

	// VotingEndsAt is when the voting phase closes
	VotingEndsAt time.Time `json:"votingEndsAt"`

	// Votes are the ballots cast so far, in submission order
	Votes []*Vote `json:"votes"`

	// Phase is the current meeting stage
	Phase MeetingPhase `json:"phase"`

	// Active is false once the meeting has been resolved
	Active bool `json:"active"`
}

// HasVoted reports whether the given player already cast a ballot
func (m *Meeting) HasVoted(playerID string) bool {
	for _, v := range m.Votes {
		if v.PlayerID == playerID {
			return true
		}
	}
	return false
}
