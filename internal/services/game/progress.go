package game

import (
	"github.com/nevix187/AmongUsIRL/internal/models"
)

// AllTasks flattens every device's task list, in device then creation
// order. Derived, never cached.
func AllTasks(game *models.Game) []*models.Task {
	var tasks []*models.Task
	for _, device := range game.Devices {
		tasks = append(tasks, device.Tasks...)
	}
	return tasks
}

// Progress is the completed fraction of all tasks, in [0,1]. A game
// with no tasks has zero progress, not a division fault.
func Progress(game *models.Game) float64 {
	tasks := AllTasks(game)
	if len(tasks) == 0 {
		return 0
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return float64(completed) / float64(len(tasks))
}
