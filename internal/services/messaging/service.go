package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// service implements the Service interface
type service struct {
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (Service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects one message from a pool
func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	messages := []string{
		"%s slipped into the airlock. Try to look innocent.",
		"%s is aboard. One of you might regret that.",
		"Welcome, %s! The vents have been freshly cleaned.",
		"%s joined the crew. Probably fine. Probably.",
	}

	return &GetJoinMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName),
	}, nil
}

func (s *service) GetSabotageMessage(ctx context.Context, input *GetSabotageMessageInput) (*GetSabotageMessageOutput, error) {
	if input.CustomMessage != "" {
		return &GetSabotageMessageOutput{Message: input.CustomMessage}, nil
	}

	var messages []string
	switch input.Type {
	case models.SabotageLights:
		messages = []string{
			"The lights are out! Fumble your way to electrical.",
			"Lights sabotaged. Hope nobody is standing behind you.",
		}
	case models.SabotageOxygen:
		messages = []string{
			"Oxygen depleting! Someone fix O2 before the complaining starts.",
			"O2 sabotaged. Breathe responsibly.",
		}
	case models.SabotageCommunications:
		messages = []string{
			"Comms are down! Task stations are flying blind.",
			"Communications sabotaged. Nobody can hear you scream. Or vote.",
		}
	case models.SabotageReactor:
		messages = []string{
			"Reactor meltdown! Two crewmates to the reactor, now.",
			"The reactor is critical. This is not a drill. Well, it is a game.",
		}
	default:
		messages = []string{
			"Something important just broke. Suspiciously on purpose.",
		}
	}

	return &GetSabotageMessageOutput{Message: s.pick(messages)}, nil
}

func (s *service) GetSabotageClearedMessage(ctx context.Context, input *GetSabotageClearedMessageInput) (*GetSabotageClearedMessageOutput, error) {
	messages := []string{
		"All clear! Systems restored. Back to your tasks.",
		"Crisis averted. The impostor is surely very disappointed.",
		"Systems back online. Carry on, crew.",
	}

	return &GetSabotageClearedMessageOutput{Message: s.pick(messages)}, nil
}

func (s *service) GetMeetingMessage(ctx context.Context, input *GetMeetingMessageInput) (*GetMeetingMessageOutput, error) {
	if input.Type == models.MeetingTypeDeadBody && input.ReportedName != "" {
		messages := []string{
			"%s reported a body: %s is dead. Everyone to the table!",
			"%s found %s. It was not pretty. Emergency meeting!",
		}
		return &GetMeetingMessageOutput{
			Message: fmt.Sprintf(s.pick(messages), input.ReporterName, input.ReportedName),
		}, nil
	}

	messages := []string{
		"%s called an emergency meeting. Drop everything!",
		"%s slammed the button. Table, now!",
		"Emergency meeting by %s. Somebody is acting sus.",
	}

	return &GetMeetingMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.ReporterName),
	}, nil
}

func (s *service) GetVoteResultMessage(ctx context.Context, input *GetVoteResultMessageInput) (*GetVoteResultMessageOutput, error) {
	switch {
	case input.Tied:
		messages := []string{
			"The vote was tied. Nobody was ejected. How diplomatic.",
			"Deadlock! Everyone lives, for now.",
		}
		return &GetVoteResultMessageOutput{Message: s.pick(messages)}, nil
	case input.Skipped:
		messages := []string{
			"The crew voted to skip. Bold strategy.",
			"Nobody was ejected. The impostor sends their thanks.",
		}
		return &GetVoteResultMessageOutput{Message: s.pick(messages)}, nil
	default:
		messages := []string{
			"%s was ejected. The void thanks you for your contribution.",
			"Goodbye, %s. We will know shortly if that was a mistake.",
		}
		return &GetVoteResultMessageOutput{
			Message: fmt.Sprintf(s.pick(messages), input.EliminatedName),
		}, nil
	}
}

func (s *service) GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error) {
	var messages []string

	switch input.Reason {
	case models.WinReasonImpostorsMajority:
		messages = []string{
			"Impostors win! The crew has been outnumbered.",
			"The impostors have taken the ship. Game over.",
		}
	case models.WinReasonImpostorsEliminated:
		messages = []string{
			"Crewmates win! Every impostor has been ejected.",
			"The ship is clean. Crewmates take the victory!",
		}
	case models.WinReasonTasksCompleted:
		messages = []string{
			"Crewmates win! Every task is complete.",
			"All tasks done. The crew wins on pure diligence!",
		}
	default:
		if input.Winner == models.WinnerImpostors {
			messages = []string{"Impostors win!"}
		} else {
			messages = []string{"Crewmates win!"}
		}
	}

	return &GetWinMessageOutput{Message: s.pick(messages)}, nil
}
