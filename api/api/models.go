/* models.go
 * This file contain the structs that are used by api consumers
 */

package api

import (
	"sumo-data/api/shared"
	"sumo-data/api/store"
)

// MatchCard is everything shown for one match: the match itself, both sides and the head-to-head record
type MatchCard struct {
	Tournament store.Tournament
	Day        int
	// Index is zero based
	Index int
	Total int
	Match store.Match

	East SideCard
	West SideCard

	// HeadToHead is nil when HeadToHeadErr is set
	HeadToHead    *store.HeadToHead
	HeadToHeadErr error
}

// SideCard holds one side of a match. Profile is nil when Err is set
type SideCard struct {
	Side       shared.Side
	Competitor store.Competitor
	Profile    *store.RikishiProfile
	Err        error
}

// Side returns the card for the given side
func (c MatchCard) Side(side shared.Side) SideCard {
	if side == shared.West {
		return c.West
	}
	return c.East
}

// Loaded reports whether the profile was fetched
func (s SideCard) Loaded() bool {
	return s.Err == nil && s.Profile != nil
}
