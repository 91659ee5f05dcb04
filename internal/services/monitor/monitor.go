package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/nevix187/AmongUsIRL/internal/common/clock"
	"github.com/nevix187/AmongUsIRL/internal/models"
	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
)

// DefaultInterval is how often running games are re-evaluated
const DefaultInterval = time.Second

// Config holds configuration for the game monitor
type Config struct {
	GameService gameService.Service
	Clock       clock.Clock

	// Interval between evaluation passes (defaults to DefaultInterval)
	Interval time.Duration

	// SabotageDuration is the effect window before a sabotage
	// auto-clears (defaults to gameService.SabotageDuration)
	SabotageDuration time.Duration
}

// Monitor drives the time-based transitions no player action triggers:
// meeting phase deadlines, win-condition checks and sabotage expiry.
// It observes the game collection through the service's watch channel
// and re-evaluates every running game once per interval.
type Monitor struct {
	config *Config

	mu       sync.Mutex
	games    map[string]*models.Game
	expiries map[expiryKey]*time.Timer

	cancel context.CancelFunc
	done   chan struct{}
}

// expiryKey identifies one scheduled sabotage expiry. Keying on the
// activation timestamp means a re-triggered sabotage gets a fresh timer
// and the stale one expires harmlessly.
type expiryKey struct {
	gameID    string
	deviceID  string
	timestamp int64
}

// New creates a new game monitor
func New(cfg *Config) (*Monitor, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	duration := cfg.SabotageDuration
	if duration <= 0 {
		duration = gameService.SabotageDuration
	}

	return &Monitor{
		config: &Config{
			GameService:      cfg.GameService,
			Clock:            cfg.Clock,
			Interval:         interval,
			SabotageDuration: duration,
		},
		games:    make(map[string]*models.Game),
		expiries: make(map[expiryKey]*time.Timer),
	}, nil
}

// Start subscribes to game updates and begins the evaluation loop.
// It returns once the subscription is established; the loop runs until
// Stop is called or the context is cancelled.
func (m *Monitor) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	updates, err := m.config.GameService.WatchGames(ctx)
	if err != nil {
		cancel()
		return err
	}

	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx, updates)
	return nil
}

// Stop halts the evaluation loop and cancels pending sabotage expiries
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, timer := range m.expiries {
		timer.Stop()
		delete(m.expiries, key)
	}
}

func (m *Monitor) run(ctx context.Context, updates <-chan map[string]*models.Game) {
	defer close(m.done)

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case games, ok := <-updates:
			if !ok {
				return
			}
			m.observe(ctx, games)
		case <-ticker.C:
			m.evaluate(ctx)
		}
	}
}

// observe replaces the known collection and reconciles sabotage expiry
// timers against it
func (m *Monitor) observe(ctx context.Context, games map[string]*models.Game) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.games = games

	// Schedule expiries for sabotages we have not seen yet
	live := make(map[expiryKey]bool)
	for _, game := range games {
		for _, device := range game.Devices {
			sabotage := device.Sabotage
			if sabotage == nil || !sabotage.Active {
				continue
			}
			key := expiryKey{
				gameID:    game.ID,
				deviceID:  device.ID,
				timestamp: sabotage.Timestamp.UnixMilli(),
			}
			live[key] = true
			if _, scheduled := m.expiries[key]; scheduled {
				continue
			}
			m.expiries[key] = time.AfterFunc(m.expiryDelay(sabotage), func() {
				m.expireSabotage(ctx, key)
			})
		}
	}

	// Drop timers whose sabotage was cleared or replaced
	for key, timer := range m.expiries {
		if !live[key] {
			timer.Stop()
			delete(m.expiries, key)
		}
	}
}

func (m *Monitor) expiryDelay(sabotage *models.SabotageEvent) time.Duration {
	deadline := sabotage.Timestamp.Add(m.config.SabotageDuration)
	delay := deadline.Sub(m.config.Clock.Now())
	if delay < 0 {
		return 0
	}
	return delay
}

func (m *Monitor) expireSabotage(ctx context.Context, key expiryKey) {
	m.mu.Lock()
	delete(m.expiries, key)
	m.mu.Unlock()

	_, err := m.config.GameService.ExpireSabotage(ctx, &gameService.ExpireSabotageInput{
		GameID:    key.gameID,
		DeviceID:  key.deviceID,
		Timestamp: key.timestamp,
	})
	if err != nil {
		log.Printf("failed to expire sabotage on device %s: %v", key.deviceID, err)
	}
}

// evaluate runs one pass over the known games: meetings advance through
// their deadlines, active games get a win check
func (m *Monitor) evaluate(ctx context.Context) {
	m.mu.Lock()
	games := make([]*models.Game, 0, len(m.games))
	for _, game := range m.games {
		games = append(games, game)
	}
	m.mu.Unlock()

	for _, game := range games {
		switch game.Status {
		case models.GameStatusMeeting:
			if _, err := m.config.GameService.AdvanceMeeting(ctx, &gameService.AdvanceMeetingInput{
				GameID: game.ID,
			}); err != nil {
				log.Printf("failed to advance meeting for game %s: %v", game.ID, err)
			}
		case models.GameStatusActive:
			if _, err := m.config.GameService.CheckWinConditions(ctx, &gameService.CheckWinConditionsInput{
				GameID: game.ID,
			}); err != nil {
				log.Printf("failed to check win conditions for game %s: %v", game.ID, err)
			}
		}
	}
}
