package game

import (
	"github.com/nevix187/AmongUsIRL/internal/models"
	gameRepo "github.com/nevix187/AmongUsIRL/internal/repositories/game"
	"go.uber.org/mock/gomock"
)

func (s *GameServiceTestSuite) TestRegisterDevice() {
	s.mockGameRepo.EXPECT().
		FindGameByCode(s.ctx, &gameRepo.FindGameByCodeInput{Code: "G12345", Kind: gameRepo.CodeKindDevice}).
		Return(s.waitingGame, nil)
	s.mockUUID.EXPECT().NewUUID().Return("new-device-id")
	s.expectSaveGame()

	out, err := s.gameService.RegisterDevice(s.ctx, &RegisterDeviceInput{
		DeviceCode: "G12345",
		Name:       "Reactor",
		Location:   "Basement",
	})
	s.Require().NoError(err)
	s.Equal("new-device-id", out.Device.ID)
	s.Equal("Reactor", out.Device.Name)
	s.Equal("Basement", out.Device.Location)
	s.Empty(out.Device.Tasks)
	s.Equal(s.testTime, out.Device.ConnectedAt)
	s.Len(out.Game.Devices, 1)
}

func (s *GameServiceTestSuite) TestRegisterDeviceMidGame() {
	// Stations may join a running game; they start with no tasks
	s.mockGameRepo.EXPECT().
		FindGameByCode(s.ctx, gomock.Any()).
		Return(s.activeGame, nil)
	s.mockUUID.EXPECT().NewUUID().Return("new-device-id")
	s.expectSaveGame()

	out, err := s.gameService.RegisterDevice(s.ctx, &RegisterDeviceInput{
		DeviceCode: "G12345",
		Name:       "Electrical",
	})
	s.Require().NoError(err)
	s.Empty(out.Device.Tasks)
}

func (s *GameServiceTestSuite) TestUpdateDeviceMergePatch() {
	s.waitingGame.Devices = []*models.Device{
		{ID: "device-id", Name: "Reactor", Location: "Basement"},
	}
	s.expectGetGame(s.waitingGame)
	s.expectSaveGame()

	name := "Upper Reactor"
	out, err := s.gameService.UpdateDevice(s.ctx, &UpdateDeviceInput{
		GameID:   s.testGameID,
		DeviceID: "device-id",
		Patch:    DevicePatch{Name: &name},
	})
	s.Require().NoError(err)
	s.Equal("Upper Reactor", out.Device.Name)

	// Absent patch fields are preserved
	s.Equal("Basement", out.Device.Location)
}

func (s *GameServiceTestSuite) TestAddTask() {
	s.waitingGame.Devices = []*models.Device{
		{ID: "device-id", Name: "Reactor", Tasks: []*models.Task{}},
	}
	s.expectGetGame(s.waitingGame)
	s.mockUUID.EXPECT().NewUUID().Return("new-task-id")
	s.expectSaveGame()

	out, err := s.gameService.AddTask(s.ctx, &AddTaskInput{
		GameID:   s.testGameID,
		DeviceID: "device-id",
		Name:     "Calibrate distributor",
	})
	s.Require().NoError(err)
	s.Equal("new-task-id", out.Task.ID)
	s.False(out.Task.Completed)
	s.Len(out.Game.Devices[0].Tasks, 1)
}

func (s *GameServiceTestSuite) TestCompleteTask() {
	s.activeGame.Devices = []*models.Device{
		{ID: "device-id", Tasks: []*models.Task{{ID: "task-id", Name: "Fix wiring"}}},
	}
	s.expectGetGame(s.activeGame)
	s.expectSaveGame()

	out, err := s.gameService.CompleteTask(s.ctx, &CompleteTaskInput{
		GameID:   s.testGameID,
		DeviceID: "device-id",
		TaskID:   "task-id",
	})
	s.Require().NoError(err)
	s.True(out.Task.Completed)
}

func (s *GameServiceTestSuite) TestCompleteTaskBlockedDuringSabotage() {
	s.activeGame.Devices = []*models.Device{
		{
			ID:       "device-id",
			Tasks:    []*models.Task{{ID: "task-id", Name: "Fix wiring"}},
			Sabotage: &models.SabotageEvent{Type: models.SabotageLights, Active: true},
		},
	}
	s.expectGetGame(s.activeGame)

	_, err := s.gameService.CompleteTask(s.ctx, &CompleteTaskInput{
		GameID:   s.testGameID,
		DeviceID: "device-id",
		TaskID:   "task-id",
	})
	s.Require().ErrorIs(err, ErrSabotageActive)
}

func (s *GameServiceTestSuite) TestAddTaskBlockedDuringSabotage() {
	// An active sabotage on any device blocks task mutation everywhere
	s.activeGame.Devices = []*models.Device{
		{ID: "device-1", Sabotage: &models.SabotageEvent{Type: models.SabotageLights, Active: true}},
		{ID: "device-2", Tasks: []*models.Task{}},
	}
	s.expectGetGame(s.activeGame)

	_, err := s.gameService.AddTask(s.ctx, &AddTaskInput{
		GameID:   s.testGameID,
		DeviceID: "device-2",
		Name:     "Prime shields",
	})
	s.Require().ErrorIs(err, ErrSabotageActive)
}

func (s *GameServiceTestSuite) TestRemoveTask() {
	s.waitingGame.Devices = []*models.Device{
		{ID: "device-id", Tasks: []*models.Task{
			{ID: "task-1", Name: "Fix wiring"},
			{ID: "task-2", Name: "Prime shields"},
		}},
	}
	s.expectGetGame(s.waitingGame)
	s.expectSaveGame()

	out, err := s.gameService.RemoveTask(s.ctx, &RemoveTaskInput{
		GameID:   s.testGameID,
		DeviceID: "device-id",
		TaskID:   "task-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Game.Devices[0].Tasks, 1)
	s.Equal("task-2", out.Game.Devices[0].Tasks[0].ID)
}

func (s *GameServiceTestSuite) TestRemoveTaskNotFound() {
	s.waitingGame.Devices = []*models.Device{
		{ID: "device-id", Tasks: []*models.Task{}},
	}
	s.expectGetGame(s.waitingGame)

	_, err := s.gameService.RemoveTask(s.ctx, &RemoveTaskInput{
		GameID:   s.testGameID,
		DeviceID: "device-id",
		TaskID:   "missing",
	})
	s.Require().ErrorIs(err, ErrTaskNotFound)
}
