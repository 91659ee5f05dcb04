package messaging

import (
	"github.com/nevix187/AmongUsIRL/internal/models"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed overrides the random source seed when non-zero, for
	// deterministic selection in tests
	Seed int64
}

// GetJoinMessageInput contains parameters for a join announcement
type GetJoinMessageInput struct {
	PlayerName string
}

// GetJoinMessageOutput contains the join announcement
type GetJoinMessageOutput struct {
	Message string
}

// GetSabotageMessageInput contains parameters for a sabotage alert
type GetSabotageMessageInput struct {
	Type models.SabotageType

	// CustomMessage overrides the generated text when non-empty
	CustomMessage string
}

// GetSabotageMessageOutput contains the sabotage alert
type GetSabotageMessageOutput struct {
	Message string
}

// GetSabotageClearedMessageInput contains parameters for the all-clear
type GetSabotageClearedMessageInput struct {
	Type models.SabotageType
}

// GetSabotageClearedMessageOutput contains the all-clear announcement
type GetSabotageClearedMessageOutput struct {
	Message string
}

// GetMeetingMessageInput contains parameters for a meeting announcement
type GetMeetingMessageInput struct {
	Type         models.MeetingType
	ReporterName string

	// ReportedName is the dead player's name for dead-body reports
	ReportedName string
}

// GetMeetingMessageOutput contains the meeting announcement
type GetMeetingMessageOutput struct {
	Message string
}

// GetVoteResultMessageInput contains parameters for a vote-result
// announcement
type GetVoteResultMessageInput struct {
	EliminatedName string
	Tied           bool
	Skipped        bool
}

// GetVoteResultMessageOutput contains the vote-result announcement
type GetVoteResultMessageOutput struct {
	Message string
}

// GetWinMessageInput contains parameters for the end-of-game
// announcement
type GetWinMessageInput struct {
	Winner models.Winner
	Reason models.WinReason
}

// GetWinMessageOutput contains the end-of-game announcement
type GetWinMessageOutput struct {
	Message string
}
