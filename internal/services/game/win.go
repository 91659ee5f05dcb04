package game

import (
	"context"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// WinVerdict is the outcome of one evaluation pass
type WinVerdict struct {
	Winner models.Winner
	Reason models.WinReason
}

// EvaluateWin applies the win conditions as a strict priority list.
// The ordering is load-bearing: the majority check precedes the
// elimination and task-completion checks whenever more than one could
// apply, so a game where the last impostor reaches parity reports
// impostors_majority even if all tasks are also complete.
func EvaluateWin(game *models.Game) *WinVerdict {
	aliveImpostors := 0
	aliveCrewmates := 0
	for _, p := range game.AlivePlayers() {
		switch p.Role {
		case models.RoleImpostor:
			aliveImpostors++
		case models.RoleCrewmate:
			aliveCrewmates++
		}
	}

	if aliveImpostors >= aliveCrewmates && aliveImpostors > 0 {
		return &WinVerdict{
			Winner: models.WinnerImpostors,
			Reason: models.WinReasonImpostorsMajority,
		}
	}

	if aliveImpostors == 0 {
		return &WinVerdict{
			Winner: models.WinnerCrewmates,
			Reason: models.WinReasonImpostorsEliminated,
		}
	}

	tasks := AllTasks(game)
	if len(tasks) > 0 {
		completed := 0
		for _, t := range tasks {
			if t.Completed {
				completed++
			}
		}
		if completed == len(tasks) {
			return &WinVerdict{
				Winner: models.WinnerCrewmates,
				Reason: models.WinReasonTasksCompleted,
			}
		}
	}

	return nil
}

// CheckWinConditions evaluates the win conditions for an active game
// and ends it on a verdict. Re-checking a game that already left the
// active state is a no-op, which keeps the periodic check idempotent
// against concurrent enders.
func (s *service) CheckWinConditions(ctx context.Context, input *CheckWinConditionsInput) (*CheckWinConditionsOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusActive {
		return &CheckWinConditionsOutput{Game: game}, nil
	}

	verdict := EvaluateWin(game)
	if verdict == nil {
		return &CheckWinConditionsOutput{Game: game}, nil
	}

	game.Status = models.GameStatusEnded
	game.Result = &models.GameResult{
		Winner:  verdict.Winner,
		Reason:  verdict.Reason,
		EndedAt: s.config.Clock.Now(),
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &CheckWinConditionsOutput{
		Game:   game,
		Ended:  true,
		Result: game.Result,
	}, nil
}
