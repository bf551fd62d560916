/* head_to_head.go
 * Contains the method that produces the head-to-head record between two rikishi
 */

package store

import (
	"context"
	"fmt"
)

// Function to get the head-to-head record between two rikishi. The record is not cached, so every call draws new
// counts and repeated calls for the same pair can disagree
// Preconditions: Receives context and the ids of the east and west rikishi
// Postconditions: Returns a HeadToHead with both counts between 0 and 9, or ErrEmptyID if either id is empty
func (s *Store) FetchHeadToHead(ctx context.Context, eastID string, westID string) (HeadToHead, error) {
	if err := ctx.Err(); err != nil {
		return HeadToHead{}, err
	}
	if eastID == "" || westID == "" {
		return HeadToHead{}, fmt.Errorf("error fetching head-to-head %q vs %q: %w", eastID, westID, ErrEmptyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return HeadToHead{
		EastWins: s.rng.Intn(10),
		WestWins: s.rng.Intn(10),
	}, nil
}
