package game

import (
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// rosterGame builds an active game with the given alive impostor and
// crewmate counts
func (s *GameServiceTestSuite) rosterGame(aliveImpostors, aliveCrewmates int) *models.Game {
	game := s.newGame(models.GameStatusActive)
	for i := 0; i < aliveImpostors; i++ {
		game.Players = append(game.Players, &models.Player{
			ID:      "impostor-" + string(rune('a'+i)),
			Role:    models.RoleImpostor,
			IsAlive: true,
		})
	}
	for i := 0; i < aliveCrewmates; i++ {
		game.Players = append(game.Players, &models.Player{
			ID:      "crewmate-" + string(rune('a'+i)),
			Role:    models.RoleCrewmate,
			IsAlive: true,
		})
	}
	return game
}

func (s *GameServiceTestSuite) TestEvaluateWinImpostorParity() {
	game := s.rosterGame(1, 1)

	verdict := EvaluateWin(game)
	s.Require().NotNil(verdict)
	s.Equal(models.WinnerImpostors, verdict.Winner)
	s.Equal(models.WinReasonImpostorsMajority, verdict.Reason)
}

func (s *GameServiceTestSuite) TestEvaluateWinMajorityBeatsCompletedTasks() {
	// 1v1 with every task complete: the majority rule wins the race
	game := s.rosterGame(1, 1)
	game.Devices = []*models.Device{
		{ID: "device-id", Tasks: []*models.Task{
			{ID: "task-1", Completed: true},
			{ID: "task-2", Completed: true},
		}},
	}

	verdict := EvaluateWin(game)
	s.Require().NotNil(verdict)
	s.Equal(models.WinnerImpostors, verdict.Winner)
	s.Equal(models.WinReasonImpostorsMajority, verdict.Reason)
}

func (s *GameServiceTestSuite) TestEvaluateWinImpostorsEliminated() {
	game := s.rosterGame(1, 3)
	game.Players[0].IsAlive = false

	verdict := EvaluateWin(game)
	s.Require().NotNil(verdict)
	s.Equal(models.WinnerCrewmates, verdict.Winner)
	s.Equal(models.WinReasonImpostorsEliminated, verdict.Reason)
}

func (s *GameServiceTestSuite) TestEvaluateWinTasksCompleted() {
	game := s.rosterGame(1, 3)
	game.Devices = []*models.Device{
		{ID: "device-id", Tasks: []*models.Task{
			{ID: "task-1", Completed: true},
			{ID: "task-2", Completed: true},
		}},
	}

	verdict := EvaluateWin(game)
	s.Require().NotNil(verdict)
	s.Equal(models.WinnerCrewmates, verdict.Winner)
	s.Equal(models.WinReasonTasksCompleted, verdict.Reason)
}

func (s *GameServiceTestSuite) TestEvaluateWinNoVerdictInProgress() {
	game := s.rosterGame(1, 3)
	game.Devices = []*models.Device{
		{ID: "device-id", Tasks: []*models.Task{
			{ID: "task-1", Completed: true},
			{ID: "task-2", Completed: false},
		}},
	}

	s.Nil(EvaluateWin(game))
}

func (s *GameServiceTestSuite) TestEvaluateWinNoTasksIsNotTasksWin() {
	// An empty task list never counts as "all tasks complete"
	game := s.rosterGame(1, 3)

	s.Nil(EvaluateWin(game))
}

func (s *GameServiceTestSuite) TestCheckWinConditionsEndsGame() {
	game := s.rosterGame(1, 1)
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.CheckWinConditions(s.ctx, &CheckWinConditionsInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(out.Ended)
	s.Equal(models.GameStatusEnded, out.Game.Status)
	s.Require().NotNil(out.Result)
	s.Equal(models.WinnerImpostors, out.Result.Winner)
	s.Equal(s.testTime, out.Result.EndedAt)
}

func (s *GameServiceTestSuite) TestCheckWinConditionsNoVerdict() {
	game := s.rosterGame(1, 3)
	s.expectGetGame(game)

	out, err := s.gameService.CheckWinConditions(s.ctx, &CheckWinConditionsInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(out.Ended)
	s.Equal(models.GameStatusActive, out.Game.Status)
}

func (s *GameServiceTestSuite) TestCheckWinConditionsIdempotentOnEndedGame() {
	game := s.rosterGame(1, 1)
	game.Status = models.GameStatusEnded
	game.Result = &models.GameResult{
		Winner:  models.WinnerImpostors,
		Reason:  models.WinReasonImpostorsMajority,
		EndedAt: s.testTime.Add(-time.Minute),
	}
	s.expectGetGame(game)

	out, err := s.gameService.CheckWinConditions(s.ctx, &CheckWinConditionsInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(out.Ended)

	// The original result is untouched
	s.Equal(s.testTime.Add(-time.Minute), out.Game.Result.EndedAt)
}

func (s *GameServiceTestSuite) TestCheckWinConditionsSkipsMeetingState() {
	game := s.rosterGame(1, 1)
	game.Status = models.GameStatusMeeting
	s.expectGetGame(game)

	out, err := s.gameService.CheckWinConditions(s.ctx, &CheckWinConditionsInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(out.Ended)
	s.Equal(models.GameStatusMeeting, out.Game.Status)
}
