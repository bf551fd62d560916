/* api_test.go
 * Contains unit tests for api.go - testing all public API methods
 */

package api

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"sumo-data/api/shared"
	"sumo-data/api/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(matchCount int) (*API, *MockStore) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mockStore := NewMockStore(matchCount)
	return NewAPIWithStore(mockStore, logger), mockStore
}

// region NewAPI tests

func TestNewAPI_Success(t *testing.T) {
	a, err := NewAPI(store.Config{Seed: store.TestSeed, Now: store.FixedClock(store.TournamentDay(4))})

	require.NoError(t, err)
	data, err := a.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, data.Day)
	assert.Len(t, data.Matches, 15)
}

func TestNewAPI_InvalidTournament(t *testing.T) {
	_, err := NewAPI(store.Config{Tournament: store.Tournament{Name: "x", StartDate: "never"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize store")
}

// endregion

// region Initialize tests

func TestInitialize_WrapsError(t *testing.T) {
	a, mockStore := newTestAPI(3)
	mockStore.InitializeError = errors.New("boom")

	_, err := a.Initialize(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, mockStore.InitializeCalls)
}

// endregion

// region CurrentCard tests

func TestCurrentCard_Success(t *testing.T) {
	a, _ := newTestAPI(3)

	card, err := a.CurrentCard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, card.Index)
	assert.Equal(t, 3, card.Total)
	assert.Equal(t, 3, card.Day)
	assert.Equal(t, "Terunofuji0", card.East.Competitor.Shikona)
	assert.True(t, card.East.Loaded())
	assert.True(t, card.West.Loaded())
	assert.Equal(t, shared.West, card.Side(shared.West).Side)
	require.NotNil(t, card.HeadToHead)
	assert.Equal(t, 4, card.HeadToHead.EastWins)
	assert.NoError(t, card.HeadToHeadErr)
}

func TestCurrentCard_NoMatches(t *testing.T) {
	a, _ := newTestAPI(0)

	_, err := a.CurrentCard(context.Background())

	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestCurrentCard_OneSideFails(t *testing.T) {
	a, mockStore := newTestAPI(2)
	mockStore.RikishiErrors["west-rikishi-0"] = errors.New("profile unavailable")

	card, err := a.CurrentCard(context.Background())

	require.NoError(t, err)
	assert.True(t, card.East.Loaded())
	assert.False(t, card.West.Loaded())
	assert.Nil(t, card.West.Profile)
	assert.EqualError(t, card.West.Err, "profile unavailable")
	assert.Equal(t, "Takayasu0", card.West.Competitor.Shikona)
}

func TestCurrentCard_HeadToHeadFails(t *testing.T) {
	a, mockStore := newTestAPI(2)
	mockStore.HeadToHeadError = errors.New("h2h unavailable")

	card, err := a.CurrentCard(context.Background())

	require.NoError(t, err)
	assert.Nil(t, card.HeadToHead)
	assert.Error(t, card.HeadToHeadErr)
	assert.True(t, card.East.Loaded())
}

// endregion

// region navigation tests

func TestNavigation_Bounds(t *testing.T) {
	a, mockStore := newTestAPI(3)

	assert.False(t, a.Previous())
	assert.True(t, a.Next())
	assert.True(t, a.Next())
	assert.False(t, a.Next())
	assert.Equal(t, 2, mockStore.Index)
	assert.True(t, a.Previous())
	assert.Equal(t, 1, mockStore.Index)
}

func TestSelect(t *testing.T) {
	a, mockStore := newTestAPI(3)

	assert.True(t, a.Select(2))
	assert.False(t, a.Select(3))
	assert.Equal(t, 2, mockStore.Index)
}

func TestJump_ExactName(t *testing.T) {
	a, mockStore := newTestAPI(5)

	index, err := a.Jump("Takayasu3")

	require.NoError(t, err)
	assert.Equal(t, 3, index)
	assert.Equal(t, 3, mockStore.Index)
}

func TestJump_CaseInsensitiveQuoted(t *testing.T) {
	a, mockStore := newTestAPI(5)

	index, err := a.Jump(`"terunofuji2"`)

	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, 2, mockStore.Index)
}

func TestJump_NoMatch(t *testing.T) {
	a, mockStore := newTestAPI(5)
	mockStore.Index = 1

	_, err := a.Jump("Hakuho")

	assert.ErrorIs(t, err, ErrNoSuchRikishi)
	assert.Equal(t, 1, mockStore.Index)
}

func TestJump_NoMatches(t *testing.T) {
	a, _ := newTestAPI(0)

	_, err := a.Jump("Abi")

	assert.ErrorIs(t, err, ErrNoMatches)
}

// endregion

// region Rikishi tests

func TestRikishi_ByID(t *testing.T) {
	a, _ := newTestAPI(3)

	p, err := a.Rikishi(context.Background(), "west-rikishi-2")

	require.NoError(t, err)
	assert.Equal(t, "Takayasu2", p.Shikona)
}

func TestRikishi_ByName(t *testing.T) {
	a, _ := newTestAPI(3)

	p, err := a.Rikishi(context.Background(), "Terunofuji1")

	require.NoError(t, err)
	assert.Equal(t, "east-rikishi-1", p.ID)
}

func TestRikishi_SamePointer(t *testing.T) {
	a, _ := newTestAPI(3)

	first, err := a.Rikishi(context.Background(), "east-rikishi-0")
	require.NoError(t, err)
	second, err := a.Rikishi(context.Background(), "east-rikishi-0")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestRikishi_Unknown(t *testing.T) {
	a, _ := newTestAPI(3)

	_, err := a.Rikishi(context.Background(), "zzzz")

	assert.ErrorIs(t, err, ErrNoSuchRikishi)
}

// endregion

// region RikishiProfiles tests

func TestRikishiProfiles_Mixed(t *testing.T) {
	a, _ := newTestAPI(3)

	profiles, invalid, err := a.RikishiProfiles(context.Background(), []string{"Takayasu1", "nobody", `"terunofuji0"`})

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "west-rikishi-1", profiles[0].ID)
	assert.Equal(t, "east-rikishi-0", profiles[1].ID)
	assert.Equal(t, []string{"nobody"}, invalid)
}

func TestRikishiProfiles_FetchError(t *testing.T) {
	a, mockStore := newTestAPI(3)
	mockStore.RikishiErrors["east-rikishi-2"] = errors.New("boom")

	_, _, err := a.RikishiProfiles(context.Background(), []string{"Takayasu0", "Terunofuji2"})
	assert.ErrorContains(t, err, "boom")
}

func TestRikishiProfiles_NoMatches(t *testing.T) {
	a, _ := newTestAPI(0)
	_, _, err := a.RikishiProfiles(context.Background(), []string{"Abi"})
	assert.ErrorIs(t, err, ErrNoMatches)
}

// endregion

// region HeadToHead tests

func TestHeadToHead(t *testing.T) {
	a, _ := newTestAPI(1)

	h2h, err := a.HeadToHead(context.Background(), "east-rikishi-0", "west-rikishi-0")

	require.NoError(t, err)
	assert.Equal(t, store.HeadToHead{EastWins: 4, WestWins: 2}, h2h)
}

func TestHeadToHead_Error(t *testing.T) {
	a, mockStore := newTestAPI(1)
	mockStore.HeadToHeadError = store.ErrEmptyID

	_, err := a.HeadToHead(context.Background(), "", "west-rikishi-0")

	assert.ErrorIs(t, err, store.ErrEmptyID)
}

// endregion

// region GetTournamentInfo tests

func TestGetTournamentInfo(t *testing.T) {
	a, _ := newTestAPI(4)

	info := a.GetTournamentInfo()

	require.Len(t, info, 6)
	assert.Equal(t, "Tournament Name: March Grand Sumo Tournament 2025", info[0])
	assert.Equal(t, "Location: Osaka", info[1])
	assert.Equal(t, "Dates: 2025-03-09 to 2025-03-23", info[2])
	assert.Equal(t, "Day: 3", info[3])
	assert.Equal(t, "Matches today: 4", info[4])
	assert.Contains(t, info[5], "day=3")
}

// endregion

// region integration with the generated store

func TestCard_GeneratedStore(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	a := NewAPIWithStore(store.NewTestStore(15), logger)
	_, err := a.Initialize(context.Background())
	require.NoError(t, err)

	index, err := a.Jump("Bushozan")
	require.NoError(t, err)
	assert.Equal(t, 17, index)

	card, err := a.CurrentCard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 21, card.Total)
	assert.Equal(t, "west-rikishi-17", card.West.Profile.ID)
	assert.Len(t, card.East.Profile.BashoResults, 15)
}

// endregion

// region concurrency

func TestCurrentCard_IndexMatchesCardWhileNavigating(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	a := NewAPIWithStore(store.NewTestStore(4), logger)
	_, err := a.Initialize(context.Background())
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				if !a.Next() {
					for a.Previous() {
					}
				}
			}
		}
	}()

	torn := 0
	for i := 0; i < 2000; i++ {
		card, err := a.CurrentCard(context.Background())
		require.NoError(t, err)
		if card.Match.MatchNumber != card.Index+1 || card.Total != 15 {
			torn++
		}
	}
	close(done)
	wg.Wait()

	assert.Zero(t, torn)
}

// endregion
