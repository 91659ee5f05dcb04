package roles

import (
	"math/rand"
	"time"

	"github.com/nevix187/AmongUsIRL/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_assignor.go github.com/nevix187/AmongUsIRL/internal/roles Assignor

// Assignor maps a player set and an impostor count to role-tagged players
type Assignor interface {
	// Assign labels exactly impostorCount players as impostors and the
	// rest as crewmates. The input slice is not modified; the returned
	// slice preserves the player multiset in a shuffled order.
	Assign(players []*models.Player, impostorCount int) []*models.Player
}

// DefaultAssignor implements Assignor with a uniform random shuffle
type DefaultAssignor struct {
	random *rand.Rand
}

// Config for the role assignor
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new role assignor
func New(cfg *Config) *DefaultAssignor {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultAssignor{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Assign produces a fresh role assignment. Calling it twice on the same
// input generally yields a different, equally valid assignment.
func (a *DefaultAssignor) Assign(players []*models.Player, impostorCount int) []*models.Player {
	shuffled := make([]*models.Player, len(players))
	for i, p := range players {
		copied := *p
		shuffled[i] = &copied
	}

	a.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i, p := range shuffled {
		if i < impostorCount {
			p.Role = models.RoleImpostor
		} else {
			p.Role = models.RoleCrewmate
		}
	}

	return shuffled
}
