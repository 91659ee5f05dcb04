package models

import (
	"time"
)

// Task is a single unit of work owned by a device
type Task struct {
	// ID is the unique identifier for the task
	ID string `json:"id"`

	// Name is the human-readable task description
	Name string `json:"name"`

	// Completed indicates whether the task is done
	Completed bool `json:"completed"`

	// CreatedAt is when the task was added
	CreatedAt time.Time `json:"createdAt"`
}

// Device represents a physical task station registered to a game.
// Tasks are added, removed and completed only by the owning station.
type Device struct {
	// ID is the unique identifier for the device
	ID string `json:"id"`

	// Name is the station's display name
	Name string `json:"name"`

	// Location is the physical location label
	Location string `json:"location"`

	// Tasks are the station's tasks, in creation order
	Tasks []*Task `json:"tasks"`

	// ConnectedAt is when the station registered
	ConnectedAt time.Time `json:"connectedAt"`

	// Sabotage is the device's current sabotage event, if any
	Sabotage *SabotageEvent `json:"sabotage,omitempty"`
}

// FindTask returns the task with the given ID, or nil
func (d *Device) FindTask(taskID string) *Task {
	for _, t := range d.Tasks {
		if t.ID == taskID {
			return t
		}
	}
	return nil
}
