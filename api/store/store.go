/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into three files:
 * tournament, rikishi and head_to_head. Each of these files generate one part of the data shown on the page.
 * Nothing here performs network I/O, every value is fabricated from the store's random source
 */

package store

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownDay = errors.New("day must be between 1 and 15")
	ErrEmptyID    = errors.New("rikishi id cannot be empty")
)

// DefaultTournament is used when no tournament is configured
var DefaultTournament = Tournament{
	Name:      "March Grand Sumo Tournament 2025",
	Location:  "Osaka",
	StartDate: "2025-03-09",
	EndDate:   "2025-03-23",
}

const (
	dateLayout = "2006-01-02"
	bashoDays  = 15
)

// Config holds the values used to construct a Store
type Config struct {
	Tournament Tournament
	// Seed for the random source. Zero seeds from the clock
	Seed   int64
	Now    func() time.Time
	Logger *logrus.Logger
}

type Store struct {
	mu     sync.Mutex
	rng    *rand.Rand
	now    func() time.Time
	logger *logrus.Logger

	configured Tournament
	tournament Tournament
	currentDay int
	matches    []Match
	matchIndex int

	rikishiCache map[string]*RikishiProfile
}

// Function for initialising Store. Validates the configured tournament and prepares the random source and cache
// Preconditions: Receives a Config; a zero Tournament falls back to DefaultTournament
// Postconditions: Returns pointer to the Store object, or error if the tournament dates cannot be parsed
func NewStore(cfg Config) (*Store, error) {
	tournament := cfg.Tournament
	if tournament.Name == "" {
		tournament = DefaultTournament
	}
	if _, err := time.Parse(dateLayout, tournament.StartDate); err != nil {
		return nil, fmt.Errorf("invalid tournament start date %q: %w", tournament.StartDate, err)
	}
	if tournament.EndDate != "" {
		if _, err := time.Parse(dateLayout, tournament.EndDate); err != nil {
			return nil, fmt.Errorf("invalid tournament end date %q: %w", tournament.EndDate, err)
		}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Store{
		rng:          rand.New(rand.NewSource(seed)),
		now:          now,
		logger:       logger,
		configured:   tournament,
		currentDay:   1,
		rikishiCache: make(map[string]*RikishiProfile),
	}, nil
}

// pick returns a random element of list. Callers must hold s.mu
func (s *Store) pick(list []string) string {
	return list[s.rng.Intn(len(list))]
}
