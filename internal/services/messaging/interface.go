package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nevix187/AmongUsIRL/internal/services/messaging Service

import (
	"context"
)

// Service generates the announcement text pushed to players and task
// stations when game events happen
type Service interface {
	// GetJoinMessage returns an announcement for a player joining the lobby
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetSabotageMessage returns the alert text shown on task stations
	// while a sabotage is active
	GetSabotageMessage(ctx context.Context, input *GetSabotageMessageInput) (*GetSabotageMessageOutput, error)

	// GetSabotageClearedMessage returns the all-clear announcement
	GetSabotageClearedMessage(ctx context.Context, input *GetSabotageClearedMessageInput) (*GetSabotageClearedMessageOutput, error)

	// GetMeetingMessage returns the meeting announcement
	GetMeetingMessage(ctx context.Context, input *GetMeetingMessageInput) (*GetMeetingMessageOutput, error)

	// GetVoteResultMessage returns the announcement for a resolved vote
	GetVoteResultMessage(ctx context.Context, input *GetVoteResultMessageInput) (*GetVoteResultMessageOutput, error)

	// GetWinMessage returns the end-of-game announcement
	GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error)
}
