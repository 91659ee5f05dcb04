package gamecode

import (
	"math/rand"
	"strings"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/nevix187/AmongUsIRL/internal/gamecode Generator

const (
	// codeAlphabet is the character set for the random portion of a code
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// codeLength is the number of random characters after the prefix
	codeLength = 5

	// GameCodePrefix marks a player-facing session code
	GameCodePrefix = "S"

	// DeviceCodePrefix marks a station-facing device code
	DeviceCodePrefix = "G"
)

// Generator produces short human-typable join codes
type Generator interface {
	// GameCode returns a new player-facing code ("S" + 5 chars)
	GameCode() string

	// DeviceCode returns a new station-facing code ("G" + 5 chars)
	DeviceCode() string
}

// DefaultGenerator implements Generator with a pseudo-random source.
// Codes do not need to be cryptographically random, only unlikely to
// collide among the handful of concurrently live games.
type DefaultGenerator struct {
	random *rand.Rand
}

// Config for the code generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new code generator
func New(cfg *Config) *DefaultGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultGenerator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// GameCode returns a new player-facing code
func (g *DefaultGenerator) GameCode() string {
	return g.generate(GameCodePrefix)
}

// DeviceCode returns a new station-facing code
func (g *DefaultGenerator) DeviceCode() string {
	return g.generate(DeviceCodePrefix)
}

func (g *DefaultGenerator) generate(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i := 0; i < codeLength; i++ {
		b.WriteByte(codeAlphabet[g.random.Intn(len(codeAlphabet))])
	}
	return b.String()
}
