package models

import (
	"time"
)

// SabotageType identifies which ship system was sabotaged
type SabotageType string

const (
	// SabotageLights blocks tasks until the electrical systems are fixed
	SabotageLights SabotageType = "lights"

	// SabotageOxygen blocks tasks until life support is fixed
	SabotageOxygen SabotageType = "oxygen"

	// SabotageCommunications blocks tasks until comms are restored
	SabotageCommunications SabotageType = "communications"

	// SabotageReactor blocks tasks until the reactor is stabilized
	SabotageReactor SabotageType = "reactor"
)

// SabotageEvent is a timed fault broadcast onto every device. One
// logical sabotage is identified by its shared activation timestamp;
// it blocks task interaction game-wide while any device carries an
// active copy.
type SabotageEvent struct {
	// Type is which system was sabotaged
	Type SabotageType `json:"type"`

	// Message is the human-readable sabotage announcement
	Message string `json:"message"`

	// Timestamp is when the sabotage was activated
	Timestamp time.Time `json:"timestamp"`

	// ImpostorID is the player who triggered the sabotage
	ImpostorID string `json:"impostorId"`

	// Active is false once the sabotage expired or was cleared
	Active bool `json:"active"`
}
