package game

import (
	"github.com/nevix187/AmongUsIRL/internal/models"
)

func (s *GameServiceTestSuite) TestProgress() {
	game := s.newGame(models.GameStatusActive)
	game.Devices = []*models.Device{
		{ID: "device-1", Tasks: []*models.Task{
			{ID: "task-1", Completed: true},
			{ID: "task-2", Completed: true},
			{ID: "task-3", Completed: false},
		}},
		{ID: "device-2", Tasks: []*models.Task{
			{ID: "task-4", Completed: true},
			{ID: "task-5", Completed: true},
			{ID: "task-6", Completed: false},
		}},
	}

	s.Len(AllTasks(game), 6)
	s.InDelta(4.0/6.0, Progress(game), 1e-9)
}

func (s *GameServiceTestSuite) TestProgressNoTasks() {
	game := s.newGame(models.GameStatusActive)
	game.Devices = []*models.Device{{ID: "device-1", Tasks: []*models.Task{}}}

	s.Zero(Progress(game))
}
