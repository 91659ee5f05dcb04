package game

import (
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

// sabotageGame builds an active game with one alive impostor, one
// crewmate and two registered devices
func (s *GameServiceTestSuite) sabotageGame() *models.Game {
	game := s.newGame(models.GameStatusActive)
	game.Players = []*models.Player{
		{ID: "impostor-id", Name: "Mallory", Role: models.RoleImpostor, IsAlive: true},
		{ID: "crewmate-id", Name: "Alice", Role: models.RoleCrewmate, IsAlive: true},
	}
	game.Devices = []*models.Device{
		{ID: "device-1", Name: "Reactor", Tasks: []*models.Task{}},
		{ID: "device-2", Name: "Electrical", Tasks: []*models.Task{}},
	}
	return game
}

func (s *GameServiceTestSuite) TestTriggerSabotage() {
	game := s.sabotageGame()
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.TriggerSabotage(s.ctx, &TriggerSabotageInput{
		GameID:     s.testGameID,
		Type:       models.SabotageLights,
		Message:    "Fix the lights!",
		ImpostorID: "impostor-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Sabotage)
	s.Equal(models.SabotageLights, out.Sabotage.Type)
	s.Equal(s.testTime, out.Sabotage.Timestamp)

	// Every device carries the event, with the shared activation timestamp
	for _, device := range out.Game.Devices {
		s.Require().NotNil(device.Sabotage)
		s.True(device.Sabotage.Active)
		s.Equal(s.testTime, device.Sabotage.Timestamp)
		s.Equal("impostor-id", device.Sabotage.ImpostorID)
	}
}

func (s *GameServiceTestSuite) TestTriggerSabotageRejectsCrewmate() {
	game := s.sabotageGame()
	s.expectGetGame(game)

	_, err := s.gameService.TriggerSabotage(s.ctx, &TriggerSabotageInput{
		GameID:     s.testGameID,
		Type:       models.SabotageLights,
		ImpostorID: "crewmate-id",
	})
	s.Require().ErrorIs(err, ErrNotAnImpostor)
}

func (s *GameServiceTestSuite) TestTriggerSabotageRejectsDeadImpostor() {
	game := s.sabotageGame()
	game.FindPlayer("impostor-id").IsAlive = false
	s.expectGetGame(game)

	_, err := s.gameService.TriggerSabotage(s.ctx, &TriggerSabotageInput{
		GameID:     s.testGameID,
		Type:       models.SabotageLights,
		ImpostorID: "impostor-id",
	})
	s.Require().ErrorIs(err, ErrNotAnImpostor)
}

func (s *GameServiceTestSuite) TestTriggerSabotageRejectsInactiveGame() {
	game := s.sabotageGame()
	game.Status = models.GameStatusWaiting
	s.expectGetGame(game)

	_, err := s.gameService.TriggerSabotage(s.ctx, &TriggerSabotageInput{
		GameID:     s.testGameID,
		Type:       models.SabotageLights,
		ImpostorID: "impostor-id",
	})
	s.Require().ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestExpireSabotage() {
	game := s.sabotageGame()
	triggered := s.testTime.Add(-30 * time.Second)
	game.Devices[0].Sabotage = &models.SabotageEvent{
		Type:      models.SabotageLights,
		Timestamp: triggered,
		Active:    true,
	}
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.ExpireSabotage(s.ctx, &ExpireSabotageInput{
		GameID:    s.testGameID,
		DeviceID:  "device-1",
		Timestamp: triggered.UnixMilli(),
	})
	s.Require().NoError(err)
	s.True(out.Expired)
	s.False(out.Game.Devices[0].Sabotage.Active)
}

func (s *GameServiceTestSuite) TestExpireSabotageStaleTimestampIsNoop() {
	// The sabotage was replaced after the expiry was scheduled
	game := s.sabotageGame()
	game.Devices[0].Sabotage = &models.SabotageEvent{
		Type:      models.SabotageOxygen,
		Timestamp: s.testTime,
		Active:    true,
	}
	s.expectGetGame(game)

	out, err := s.gameService.ExpireSabotage(s.ctx, &ExpireSabotageInput{
		GameID:    s.testGameID,
		DeviceID:  "device-1",
		Timestamp: s.testTime.Add(-30 * time.Second).UnixMilli(),
	})
	s.Require().NoError(err)
	s.False(out.Expired)
	s.True(out.Game.Devices[0].Sabotage.Active)
}

func (s *GameServiceTestSuite) TestClearSabotage() {
	game := s.sabotageGame()
	for _, device := range game.Devices {
		device.Sabotage = &models.SabotageEvent{
			Type:      models.SabotageReactor,
			Timestamp: s.testTime,
			Active:    true,
		}
	}
	s.expectGetGame(game)
	s.expectSaveGame()

	out, err := s.gameService.ClearSabotage(s.ctx, &ClearSabotageInput{GameID: s.testGameID})
	s.Require().NoError(err)
	for _, device := range out.Game.Devices {
		s.False(device.Sabotage.Active)
	}
	s.False(IsSabotaged(out.Game))
}

func (s *GameServiceTestSuite) TestClearSabotageNothingActiveSkipsSave() {
	game := s.sabotageGame()
	s.expectGetGame(game)

	// No SaveGame expectation: a clean game is not rewritten
	_, err := s.gameService.ClearSabotage(s.ctx, &ClearSabotageInput{GameID: s.testGameID})
	s.Require().NoError(err)
}
