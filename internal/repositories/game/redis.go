package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Keys under the versioned namespace
	gamesKey       = "amongusirl:v2:games"
	currentGameKey = "amongusirl:v2:current_game"
	backupKey      = "amongusirl:v2:backup"
	updatesChannel = "amongusirl:v2:updates"

	// backupVersion tags the snapshot envelope
	backupVersion = "2.0"

	// backupInterval is how often the full collection is snapshotted
	backupInterval = 30 * time.Second

	// retentionHorizon is how long ended games are kept around
	retentionHorizon = 24 * time.Hour
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrInvalidGame is returned when a malformed aggregate is rejected on save
var ErrInvalidGame = errors.New("invalid game structure")

// backupEnvelope is the periodic full-collection snapshot shape
type backupEnvelope struct {
	Games     map[string]json.RawMessage `json:"games"`
	Timestamp time.Time                  `json:"timestamp"`
	Version   string                     `json:"version"`
}

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	done   chan struct{}
}

// NewRedis creates a new Redis-backed game repository and starts its
// periodic backup loop. Call Close to stop it.
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	r := &redisRepository{
		client: cfg.RedisClient,
		done:   make(chan struct{}),
	}

	go r.backupLoop()

	return r, nil
}

// Close stops the backup loop. It does not close the Redis client.
func (r *redisRepository) Close() {
	close(r.done)
}

// SaveGame persists a game to Redis and notifies subscribers. The
// game's CreatedAt stamp is refreshed to serve as the last-modified
// marker used for retention.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if !validGame(input.Game) {
		return ErrInvalidGame
	}

	// Refresh the last-modified marker
	input.Game.CreatedAt = time.Now()

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, gamesKey, input.Game.ID, gameJSON)
	pipe.Publish(ctx, updatesChannel, input.Game.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("failed to save game %s: %v", input.Game.ID, err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	r.pruneEndedGames(ctx)

	return nil
}

// GetGame retrieves a game by ID from Redis. A corrupt entry is dropped
// from the collection and reported as not found rather than failing the
// read path.
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.HGet(ctx, gamesKey, input.GameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := decodeGame([]byte(gameJSON))
	if err != nil {
		log.Printf("invalid game structure for %s, removing: %v", input.GameID, err)
		r.client.HDel(ctx, gamesKey, input.GameID)
		return nil, ErrGameNotFound
	}

	return game, nil
}

// FindGameByCode retrieves a game by join code. Codes are matched
// case-insensitively by upper-casing on lookup.
func (r *redisRepository) FindGameByCode(ctx context.Context, input *FindGameByCodeInput) (*models.Game, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	code := strings.ToUpper(input.Code)

	out, err := r.ListGames(ctx, &ListGamesInput{})
	if err != nil {
		return nil, err
	}

	for _, game := range out.Games {
		switch input.Kind {
		case CodeKindDevice:
			if game.DeviceCode == code {
				return game, nil
			}
		default:
			if game.GameCode == code {
				return game, nil
			}
		}
	}

	return nil, ErrGameNotFound
}

// DeleteGame removes a game from Redis and notifies subscribers
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.HDel(ctx, gamesKey, input.GameID)
	pipe.Publish(ctx, updatesChannel, input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// ListGames retrieves the full game collection. Corrupt entries are
// dropped silently (logged, removed); a failed primary read falls back
// to the last backup snapshot, and otherwise an empty collection.
func (r *redisRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	entries, err := r.client.HGetAll(ctx, gamesKey).Result()
	if err != nil {
		log.Printf("failed to read game collection, restoring from backup: %v", err)
		return &ListGamesOutput{Games: r.restoreFromBackup(ctx)}, nil
	}

	games := make(map[string]*models.Game, len(entries))
	for gameID, gameJSON := range entries {
		game, err := decodeGame([]byte(gameJSON))
		if err != nil {
			log.Printf("invalid game structure for %s, removing: %v", gameID, err)
			r.client.HDel(ctx, gamesKey, gameID)
			continue
		}
		games[gameID] = game
	}

	return &ListGamesOutput{Games: games}, nil
}

// SetCurrentGame updates the current-game pointer
func (r *redisRepository) SetCurrentGame(ctx context.Context, input *SetCurrentGameInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.GameID == "" {
		if err := r.client.Del(ctx, currentGameKey).Err(); err != nil {
			return fmt.Errorf("failed to clear current game: %w", err)
		}
		return nil
	}

	if err := r.client.Set(ctx, currentGameKey, input.GameID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set current game: %w", err)
	}

	return nil
}

// GetCurrentGame reads the current-game pointer. An unset pointer is an
// empty GameID, not an error.
func (r *redisRepository) GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error) {
	gameID, err := r.client.Get(ctx, currentGameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetCurrentGameOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get current game: %w", err)
	}

	return &GetCurrentGameOutput{GameID: gameID}, nil
}

// Subscribe delivers the full updated collection after every save until
// ctx is cancelled. Saves from other processes sharing the same Redis
// are delivered too.
func (r *redisRepository) Subscribe(ctx context.Context) (<-chan map[string]*models.Game, error) {
	pubsub := r.client.Subscribe(ctx, updatesChannel)

	// Confirm the subscription before returning so no update is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to updates: %w", err)
	}

	updates := make(chan map[string]*models.Game, 1)

	go func() {
		defer close(updates)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				out, err := r.ListGames(ctx, &ListGamesInput{})
				if err != nil {
					log.Printf("failed to load games for subscriber: %v", err)
					continue
				}
				select {
				case updates <- out.Games:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}

// pruneEndedGames removes terminal games whose last-modified marker is
// past the retention horizon
func (r *redisRepository) pruneEndedGames(ctx context.Context) {
	out, err := r.ListGames(ctx, &ListGamesInput{})
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-retentionHorizon)
	for gameID, game := range out.Games {
		if game.Status == models.GameStatusEnded && game.CreatedAt.Before(cutoff) {
			if err := r.client.HDel(ctx, gamesKey, gameID).Err(); err != nil {
				log.Printf("failed to prune game %s: %v", gameID, err)
				continue
			}
			log.Printf("pruned ended game %s", gameID)
		}
	}
}

// backupLoop snapshots the full collection on a fixed cadence
func (r *redisRepository) backupLoop() {
	ticker := time.NewTicker(backupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.createBackup(context.Background())
		}
	}
}

func (r *redisRepository) createBackup(ctx context.Context) {
	entries, err := r.client.HGetAll(ctx, gamesKey).Result()
	if err != nil {
		log.Printf("failed to read games for backup: %v", err)
		return
	}

	envelope := backupEnvelope{
		Games:     make(map[string]json.RawMessage, len(entries)),
		Timestamp: time.Now(),
		Version:   backupVersion,
	}
	for gameID, gameJSON := range entries {
		envelope.Games[gameID] = json.RawMessage(gameJSON)
	}

	backupJSON, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("failed to marshal backup: %v", err)
		return
	}

	if err := r.client.Set(ctx, backupKey, backupJSON, 0).Err(); err != nil {
		log.Printf("failed to write backup: %v", err)
	}
}

func (r *redisRepository) restoreFromBackup(ctx context.Context) map[string]*models.Game {
	backupJSON, err := r.client.Get(ctx, backupKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("failed to read backup: %v", err)
		}
		return map[string]*models.Game{}
	}

	var envelope backupEnvelope
	if err := json.Unmarshal([]byte(backupJSON), &envelope); err != nil {
		log.Printf("failed to unmarshal backup: %v", err)
		return map[string]*models.Game{}
	}

	games := make(map[string]*models.Game, len(envelope.Games))
	for gameID, gameJSON := range envelope.Games {
		game, err := decodeGame(gameJSON)
		if err != nil {
			continue
		}
		games[gameID] = game
	}

	log.Printf("restored %d games from backup", len(games))
	return games
}

// decodeGame unmarshals and validates a persisted entry
func decodeGame(data []byte) (*models.Game, error) {
	var game models.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	if !validGame(&game) {
		return nil, ErrInvalidGame
	}
	return &game, nil
}

// validGame is the validation-on-read contract: an entry is accepted
// only if it carries an id, both join codes, player and device lists,
// a status and a creation timestamp
func validGame(game *models.Game) bool {
	return game != nil &&
		game.ID != "" &&
		game.GameCode != "" &&
		game.DeviceCode != "" &&
		game.Players != nil &&
		game.Devices != nil &&
		game.Status != "" &&
		!game.CreatedAt.IsZero()
}
