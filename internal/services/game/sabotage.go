package game

import (
	"context"
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// SabotageDuration is the effect window before a sabotage auto-clears
const SabotageDuration = 30 * time.Second

// TriggerSabotage broadcasts one sabotage event onto every device. The
// shared activation timestamp identifies the logical sabotage.
// Re-triggering while one is active is permitted and restarts the
// effect window.
func (s *service) TriggerSabotage(ctx context.Context, input *TriggerSabotageInput) (*TriggerSabotageOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusActive {
		return nil, ErrInvalidGameState
	}

	impostor := game.FindPlayer(input.ImpostorID)
	if impostor == nil || impostor.Role != models.RoleImpostor || !impostor.IsAlive {
		return nil, ErrNotAnImpostor
	}

	event := models.SabotageEvent{
		Type:       input.Type,
		Message:    input.Message,
		Timestamp:  s.config.Clock.Now(),
		ImpostorID: input.ImpostorID,
		Active:     true,
	}

	for _, device := range game.Devices {
		copied := event
		device.Sabotage = &copied
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &TriggerSabotageOutput{Game: game, Sabotage: &event}, nil
}

// ExpireSabotage deactivates one device's sabotage window, identified
// by its activation timestamp. A stale timestamp means the sabotage was
// replaced or cleared in the meantime, so the call is a no-op.
func (s *service) ExpireSabotage(ctx context.Context, input *ExpireSabotageInput) (*ExpireSabotageOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	device := game.FindDevice(input.DeviceID)
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	sabotage := device.Sabotage
	if sabotage == nil || !sabotage.Active || sabotage.Timestamp.UnixMilli() != input.Timestamp {
		return &ExpireSabotageOutput{Game: game}, nil
	}

	sabotage.Active = false

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &ExpireSabotageOutput{Game: game, Expired: true}, nil
}

// ClearSabotage deactivates sabotage on every device
func (s *service) ClearSabotage(ctx context.Context, input *ClearSabotageInput) (*ClearSabotageOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	changed := false
	for _, device := range game.Devices {
		if device.Sabotage != nil && device.Sabotage.Active {
			device.Sabotage.Active = false
			changed = true
		}
	}

	if changed {
		if err := s.saveGame(ctx, game); err != nil {
			return nil, err
		}
	}

	return &ClearSabotageOutput{Game: game}, nil
}

// ActiveSabotage is the single system-wide definition of "the game is
// sabotaged": the first device carrying an active event, scanned in
// device order.
func ActiveSabotage(game *models.Game) *models.SabotageEvent {
	for _, device := range game.Devices {
		if device.Sabotage != nil && device.Sabotage.Active {
			return device.Sabotage
		}
	}
	return nil
}

// IsSabotaged reports whether any device carries an active sabotage
func IsSabotaged(game *models.Game) bool {
	return ActiveSabotage(game) != nil
}
