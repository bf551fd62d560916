/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package and its consumers
 */

package api

import (
	"context"
	"fmt"

	"sumo-data/api/store"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	TournamentData store.Tournament
	Day            int
	MatchList      []store.Match
	Index          int
	Profiles       map[string]*store.RikishiProfile
	H2H            store.HeadToHead

	// Error injection for testing error paths
	InitializeError   error
	RikishiErrors     map[string]error
	HeadToHeadError   error
	InitializeCalls   int
	FetchRikishiCalls int
}

// NewMockStore creates a new MockStore with the given number of matches on day 3 of the default tournament
func NewMockStore(matchCount int) *MockStore {
	m := &MockStore{
		TournamentData: store.DefaultTournament,
		Day:            3,
		Profiles:       make(map[string]*store.RikishiProfile),
		RikishiErrors:  make(map[string]error),
		H2H:            store.HeadToHead{EastWins: 4, WestWins: 2},
	}
	for i := 0; i < matchCount; i++ {
		match := store.CreateSampleMatch(i + 1)
		match.East.ID = fmt.Sprintf("east-rikishi-%d", i)
		match.West.ID = fmt.Sprintf("west-rikishi-%d", i)
		match.East.Shikona = fmt.Sprintf("%s%d", match.East.Shikona, i)
		match.West.Shikona = fmt.Sprintf("%s%d", match.West.Shikona, i)
		m.MatchList = append(m.MatchList, match)
	}
	return m
}

// Initialize mock implementation
func (m *MockStore) Initialize(ctx context.Context) (store.InitialData, error) {
	m.InitializeCalls++
	if m.InitializeError != nil {
		return store.InitialData{}, m.InitializeError
	}
	return store.InitialData{Tournament: m.TournamentData, Day: m.Day, Matches: m.Matches()}, nil
}

// FetchDailyMatches mock implementation
func (m *MockStore) FetchDailyMatches(ctx context.Context, day int) ([]store.Match, error) {
	if day < 1 || day > 15 {
		return nil, store.ErrUnknownDay
	}
	return m.Matches(), nil
}

// FetchRikishi mock implementation. Profiles are created on first use and kept
func (m *MockStore) FetchRikishi(ctx context.Context, competitor store.Competitor) (*store.RikishiProfile, error) {
	m.FetchRikishiCalls++
	if err, ok := m.RikishiErrors[competitor.ID]; ok {
		return nil, err
	}
	if competitor.ID == "" {
		return nil, store.ErrEmptyID
	}
	if p, ok := m.Profiles[competitor.ID]; ok {
		return p, nil
	}
	p := &store.RikishiProfile{
		ID:             competitor.ID,
		Shikona:        competitor.Shikona,
		Rank:           competitor.Rank,
		Age:            28,
		HeightCM:       182,
		WeightKG:       150,
		HeightImperial: "6 ft 0 in",
		WeightImperial: "331 lbs",
		Country:        "Japan",
		Hometown:       "Tokyo",
		Heya:           "Isegahama",
		HighestRank:    competitor.Rank,
		CurrentRecord:  "2-1",
		BashoResults: []store.DayResult{
			{Day: 1, Opponent: "Abi", Result: "win"},
			{Day: 2, Opponent: "Hoshoryu", Result: "loss"},
			{Day: 3, Opponent: "Kirishima", Result: "win"},
		},
		PreviousBasho: []store.PreviousBasho{
			{Name: "Hatsu 2025", Location: "Tokyo", Rank: "M1", Record: "9-6"},
		},
	}
	m.Profiles[competitor.ID] = p
	return p, nil
}

// FetchHeadToHead mock implementation
func (m *MockStore) FetchHeadToHead(ctx context.Context, eastID string, westID string) (store.HeadToHead, error) {
	if m.HeadToHeadError != nil {
		return store.HeadToHead{}, m.HeadToHeadError
	}
	return m.H2H, nil
}

// CurrentMatch mock implementation
func (m *MockStore) CurrentMatch() (store.Match, bool) {
	if len(m.MatchList) == 0 {
		return store.Match{}, false
	}
	return m.MatchList[m.Index], true
}

// NextMatch mock implementation
func (m *MockStore) NextMatch() (store.Match, bool) {
	if m.Index >= len(m.MatchList)-1 {
		return store.Match{}, false
	}
	m.Index++
	return m.MatchList[m.Index], true
}

// PreviousMatch mock implementation
func (m *MockStore) PreviousMatch() (store.Match, bool) {
	if m.Index <= 0 {
		return store.Match{}, false
	}
	m.Index--
	return m.MatchList[m.Index], true
}

// SelectMatch mock implementation
func (m *MockStore) SelectMatch(index int) (store.Match, bool) {
	if index < 0 || index >= len(m.MatchList) {
		return store.Match{}, false
	}
	m.Index = index
	return m.MatchList[m.Index], true
}

// CurrentPosition mock implementation
func (m *MockStore) CurrentPosition() (store.Position, bool) {
	match, ok := m.CurrentMatch()
	if !ok {
		return store.Position{}, false
	}
	return store.Position{Tournament: m.TournamentData, Day: m.Day, Index: m.Index, Total: len(m.MatchList), Match: match}, true
}

// MatchIndex mock implementation
func (m *MockStore) MatchIndex() int {
	return m.Index
}

// Tournament mock implementation
func (m *MockStore) Tournament() store.Tournament {
	return m.TournamentData
}

// CurrentDay mock implementation
func (m *MockStore) CurrentDay() int {
	return m.Day
}

// Matches mock implementation
func (m *MockStore) Matches() []store.Match {
	out := make([]store.Match, len(m.MatchList))
	copy(out, m.MatchList)
	return out
}

// Ensure MockStore implements store.Interface
var _ store.Interface = (*MockStore)(nil)
