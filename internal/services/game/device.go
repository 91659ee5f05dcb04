package game

import (
	"context"

	"github.com/nevix187/AmongUsIRL/internal/models"
	gameRepo "github.com/nevix187/AmongUsIRL/internal/repositories/game"
)

// RegisterDevice adds a task station to a game by device code. Devices
// may register in any game state; one materializing mid-game simply
// starts with zero tasks.
func (s *service) RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*RegisterDeviceOutput, error) {
	game, err := s.getGameByCode(ctx, input.DeviceCode, gameRepo.CodeKindDevice)
	if err != nil {
		return nil, err
	}

	device := &models.Device{
		ID:          s.config.UUIDGenerator.NewUUID(),
		Name:        input.Name,
		Location:    input.Location,
		Tasks:       []*models.Task{},
		ConnectedAt: s.config.Clock.Now(),
	}

	game.Devices = append(game.Devices, device)

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &RegisterDeviceOutput{Game: game, Device: device}, nil
}

// UpdateDevice applies a merge-patch to a device: present patch fields
// replace the existing values, absent fields are preserved.
func (s *service) UpdateDevice(ctx context.Context, input *UpdateDeviceInput) (*UpdateDeviceOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	device := game.FindDevice(input.DeviceID)
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	applyDevicePatch(device, input.Patch)

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &UpdateDeviceOutput{Game: game, Device: device}, nil
}

// AddTask adds a task to a device. Task list mutation is blocked while
// a sabotage is active anywhere in the game.
func (s *service) AddTask(ctx context.Context, input *AddTaskInput) (*AddTaskOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if IsSabotaged(game) {
		return nil, ErrSabotageActive
	}

	device := game.FindDevice(input.DeviceID)
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	task := &models.Task{
		ID:        s.config.UUIDGenerator.NewUUID(),
		Name:      input.Name,
		CreatedAt: s.config.Clock.Now(),
	}

	device.Tasks = append(device.Tasks, task)

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &AddTaskOutput{Game: game, Task: task}, nil
}

// RemoveTask removes a task from a device
func (s *service) RemoveTask(ctx context.Context, input *RemoveTaskInput) (*RemoveTaskOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if IsSabotaged(game) {
		return nil, ErrSabotageActive
	}

	device := game.FindDevice(input.DeviceID)
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	tasks := make([]*models.Task, 0, len(device.Tasks))
	found := false
	for _, t := range device.Tasks {
		if t.ID == input.TaskID {
			found = true
			continue
		}
		tasks = append(tasks, t)
	}

	if !found {
		return nil, ErrTaskNotFound
	}

	device.Tasks = tasks

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &RemoveTaskOutput{Game: game}, nil
}

// CompleteTask marks a task as done. Completion is blocked while a
// sabotage is active anywhere in the game.
func (s *service) CompleteTask(ctx context.Context, input *CompleteTaskInput) (*CompleteTaskOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if IsSabotaged(game) {
		return nil, ErrSabotageActive
	}

	device := game.FindDevice(input.DeviceID)
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	task := device.FindTask(input.TaskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Completed = true

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &CompleteTaskOutput{Game: game, Task: task}, nil
}

// applyDevicePatch merges a patch into a device; patch wins over
// existing values for present fields only
func applyDevicePatch(device *models.Device, patch DevicePatch) {
	if patch.Name != nil {
		device.Name = *patch.Name
	}
	if patch.Location != nil {
		device.Location = *patch.Location
	}
}
