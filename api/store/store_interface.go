/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	Initialize(ctx context.Context) (InitialData, error)
	FetchDailyMatches(ctx context.Context, day int) ([]Match, error)
	FetchRikishi(ctx context.Context, competitor Competitor) (*RikishiProfile, error)
	FetchHeadToHead(ctx context.Context, eastID string, westID string) (HeadToHead, error)

	// Match cursor
	CurrentMatch() (Match, bool)
	CurrentPosition() (Position, bool)
	NextMatch() (Match, bool)
	PreviousMatch() (Match, bool)
	SelectMatch(index int) (Match, bool)
	MatchIndex() int

	// Getter methods for accessing fields
	Tournament() Tournament
	CurrentDay() int
	Matches() []Match
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// Tournament returns the tournament set by the last Initialize
func (s *Store) Tournament() Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tournament
}

// CurrentDay returns the basho day computed by the last Initialize
func (s *Store) CurrentDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDay
}

// Matches returns a copy of the current day's matches
func (s *Store) Matches() []Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Match, len(s.matches))
	copy(out, s.matches)
	return out
}
