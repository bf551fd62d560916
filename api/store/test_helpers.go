/* test_helpers.go
 * Contains test helper functions for store package tests and for packages that need a deterministic store
 */

package store

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// TestSeed is the seed used by NewTestStore
const TestSeed int64 = 42

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TournamentDay returns the instant at noon UTC of the given day of DefaultTournament
func TournamentDay(day int) time.Time {
	start, _ := time.Parse(dateLayout, DefaultTournament.StartDate)
	return start.Add(time.Duration(day-1)*24*time.Hour + 12*time.Hour)
}

// NewTestStore creates a Store with a fixed seed, a silent logger and a clock pinned to the given day of
// DefaultTournament
func NewTestStore(day int) *Store {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := NewStore(Config{
		Tournament: DefaultTournament,
		Seed:       TestSeed,
		Now:        FixedClock(TournamentDay(day)),
		Logger:     logger,
	})
	if err != nil {
		panic(err)
	}
	return s
}

// CreateSampleMatch creates a sample Match for testing
func CreateSampleMatch(number int) Match {
	return Match{
		Division:    makuuchi,
		MatchNumber: number,
		East:        Competitor{ID: "east-rikishi-0", Shikona: "Terunofuji", Rank: "Yokozuna"},
		West:        Competitor{ID: "west-rikishi-0", Shikona: "Takayasu", Rank: "Yokozuna"},
	}
}
