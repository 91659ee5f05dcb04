package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/nevix187/AmongUsIRL/internal/models"
	gameRepo "github.com/nevix187/AmongUsIRL/internal/repositories/game"
)

// codeAttempts bounds join-code regeneration on collision
const codeAttempts = 10

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.RoleAssignor == nil {
		return nil, ErrNilRoleAssignor
	}

	if cfg.MinPlayers <= 0 {
		cfg.MinPlayers = DefaultMinPlayers
	}

	return &service{config: cfg}, nil
}

// CreateGame creates a new game in the waiting state
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input.AdminPassword != s.config.AdminPassword {
		return nil, ErrInvalidAdminPassword
	}

	if input.ImpostorCount < 1 {
		return nil, ErrInvalidImpostorCount
	}

	gameCode, err := s.uniqueCode(ctx, gameRepo.CodeKindGame)
	if err != nil {
		return nil, err
	}

	deviceCode, err := s.uniqueCode(ctx, gameRepo.CodeKindDevice)
	if err != nil {
		return nil, err
	}

	settings := models.GameSettings{
		DiscussionTime: DefaultDiscussionTime,
		VotingTime:     DefaultVotingTime,
		MaxMeetings:    DefaultMaxMeetings,
	}
	if input.Settings != nil {
		settings = *input.Settings
	}

	game := &models.Game{
		ID:            s.config.UUIDGenerator.NewUUID(),
		GameCode:      gameCode,
		DeviceCode:    deviceCode,
		HostID:        input.HostID,
		ImpostorCount: input.ImpostorCount,
		Players:       []*models.Player{},
		Devices:       []*models.Device{},
		Status:        models.GameStatusWaiting,
		CreatedAt:     s.config.Clock.Now(),
		Settings:      settings,
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	if err := s.config.GameRepo.SetCurrentGame(ctx, &gameRepo.SetCurrentGameInput{
		GameID: game.ID,
	}); err != nil {
		return nil, err
	}

	return &CreateGameOutput{Game: game}, nil
}

// JoinGame adds a player to a waiting game by join code
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	game, err := s.getGameByCode(ctx, input.GameCode, gameRepo.CodeKindGame)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusWaiting {
		return nil, ErrInvalidGameState
	}

	// Display names are unique within a game, case-sensitive
	for _, p := range game.Players {
		if p.Name == input.PlayerName {
			return nil, ErrDuplicatePlayerName
		}
	}

	player := &models.Player{
		ID:       s.config.UUIDGenerator.NewUUID(),
		Name:     input.PlayerName,
		IsAlive:  true,
		JoinedAt: s.config.Clock.Now(),
	}

	game.Players = append(game.Players, player)

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &JoinGameOutput{Game: game, Player: player}, nil
}

// RemovePlayer removes a player from a waiting game
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusWaiting {
		return nil, ErrInvalidGameState
	}

	players := make([]*models.Player, 0, len(game.Players))
	found := false
	for _, p := range game.Players {
		if p.ID == input.PlayerID {
			found = true
			continue
		}
		players = append(players, p)
	}

	if !found {
		return nil, ErrPlayerNotFound
	}

	game.Players = players

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &RemovePlayerOutput{Game: game}, nil
}

// StartGame assigns roles and moves the game to active
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusWaiting {
		return nil, ErrInvalidGameState
	}

	if len(game.Players) < s.config.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	if game.ImpostorCount >= len(game.Players) {
		return nil, ErrTooManyImpostors
	}

	assigned := s.config.RoleAssignor.Assign(game.Players, game.ImpostorCount)
	for _, p := range assigned {
		p.IsAlive = true
		p.VotedFor = ""
	}

	now := s.config.Clock.Now()
	game.Players = assigned
	game.Status = models.GameStatusActive
	game.StartedAt = &now

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &StartGameOutput{Game: game}, nil
}

// ResetGame returns a game to the lobby, clearing players, devices,
// meeting and result
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	game.Players = []*models.Player{}
	game.Devices = []*models.Device{}
	game.Status = models.GameStatusWaiting
	game.StartedAt = nil
	game.Meeting = nil
	game.Result = nil
	game.MeetingsCalled = 0

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &ResetGameOutput{Game: game}, nil
}

// EndGame moves a game to ended with the given result, from any state.
// A repeated call overwrites the prior result.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	game.Status = models.GameStatusEnded
	game.Result = &models.GameResult{
		Winner:  input.Winner,
		Reason:  input.Reason,
		EndedAt: s.config.Clock.Now(),
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &EndGameOutput{Game: game}, nil
}

// DeleteGame removes a game outright. Unlike EndGame this leaves no
// record; it is the admin's cleanup hatch.
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input.AdminPassword != s.config.AdminPassword {
		return nil, ErrInvalidAdminPassword
	}

	if _, err := s.getGame(ctx, input.GameID); err != nil {
		return nil, err
	}

	if err := s.config.GameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, err
	}

	return &DeleteGameOutput{}, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game}, nil
}

// GetCurrentGame retrieves the game the admin surface is managing. An
// unset or stale pointer yields a nil game, not an error.
func (s *service) GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error) {
	current, err := s.config.GameRepo.GetCurrentGame(ctx, &gameRepo.GetCurrentGameInput{})
	if err != nil {
		return nil, err
	}

	if current.GameID == "" {
		return &GetCurrentGameOutput{}, nil
	}

	game, err := s.getGame(ctx, current.GameID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return &GetCurrentGameOutput{}, nil
		}
		return nil, err
	}

	return &GetCurrentGameOutput{Game: game}, nil
}

// GetGameByCode retrieves a game by join code
func (s *service) GetGameByCode(ctx context.Context, input *GetGameByCodeInput) (*GetGameByCodeOutput, error) {
	game, err := s.getGameByCode(ctx, input.Code, input.Kind)
	if err != nil {
		return nil, err
	}

	return &GetGameByCodeOutput{Game: game}, nil
}

// WatchGames delivers the full game collection after every save
func (s *service) WatchGames(ctx context.Context) (<-chan map[string]*models.Game, error) {
	return s.config.GameRepo.Subscribe(ctx)
}

// uniqueCode generates a join code that no live game is using
func (s *service) uniqueCode(ctx context.Context, kind gameRepo.CodeKind) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		var code string
		if kind == gameRepo.CodeKindDevice {
			code = s.config.CodeGenerator.DeviceCode()
		} else {
			code = s.config.CodeGenerator.GameCode()
		}

		_, err := s.config.GameRepo.FindGameByCode(ctx, &gameRepo.FindGameByCodeInput{
			Code: code,
			Kind: kind,
		})
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
	}

	return "", ErrCodeCollision
}

// getGame maps the repository's not-found onto the service error
func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.config.GameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

func (s *service) getGameByCode(ctx context.Context, code string, kind gameRepo.CodeKind) (*models.Game, error) {
	game, err := s.config.GameRepo.FindGameByCode(ctx, &gameRepo.FindGameByCodeInput{
		Code: code,
		Kind: kind,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

func (s *service) saveGame(ctx context.Context, game *models.Game) error {
	return s.config.GameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
}
