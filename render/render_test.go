/* render_test.go
 * Contains unit tests for view.go, text.go and terminal.go
 */

package render

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"sumo-data/api/api"
	"sumo-data/api/shared"
	"sumo-data/api/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updated = time.Date(2025, time.March, 12, 9, 30, 5, 0, time.UTC)

func sampleCard(t *testing.T, configure func(*api.MockStore)) api.MatchCard {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mockStore := api.NewMockStore(3)
	if configure != nil {
		configure(mockStore)
	}
	card, err := api.NewAPIWithStore(mockStore, logger).CurrentCard(context.Background())
	require.NoError(t, err)
	return card
}

// region NewMatchView tests

func TestNewMatchView_Loaded(t *testing.T) {
	view := NewMatchView(sampleCard(t, nil), updated)

	assert.Equal(t, "March Grand Sumo Tournament 2025", view.TournamentName)
	assert.Equal(t, "Day: 3", view.DayNumber)
	assert.Equal(t, "Match: Makuuchi #1", view.CurrentMatch)
	assert.Equal(t, "1 / 3", view.Position)
	assert.False(t, view.HasPrevious)
	assert.True(t, view.HasNext)
	assert.Equal(t, "Last updated: 2025-03-12 09:30:05", view.LastUpdated)

	east := view.East
	assert.True(t, east.Loaded)
	assert.Equal(t, "Terunofuji0", east.Shikona)
	assert.Equal(t, "Yokozuna", east.Rank)
	assert.Equal(t, "assets/images/japan-flag.png", east.FlagSrc)
	assert.Equal(t, "assets/images/east-placeholder.png", east.PhotoSrc)
	assert.Equal(t, "Tokyo", east.Hometown)
	assert.Equal(t, "2-1", east.Record)
	assert.Equal(t, "28 years", east.Age)
	assert.Equal(t, "182 cm (6 ft 0 in)", east.Height)
	assert.Equal(t, "150 kg (331 lbs)", east.Weight)
	assert.Equal(t, "Isegahama", east.Heya)
	assert.Equal(t, "2-1", east.Summary)
	require.Len(t, east.Results, 3)
	assert.Equal(t, ResultView{Day: 2, Class: "loss", Opponent: "Hoshoryu"}, east.Results[1])
	require.Len(t, east.PreviousBasho, 1)
	assert.Equal(t, "Hatsu 2025", east.PreviousBasho[0].Name)
	assert.Contains(t, east.ProfileURL, "shikona=Terunofuji0")

	assert.Equal(t, "assets/images/west-placeholder.png", view.West.PhotoSrc)
	assert.Equal(t, "Terunofuji0 4 - 2 Takayasu0", view.HeadToHead)
}

func TestNewMatchView_MongolianFlag(t *testing.T) {
	card := sampleCard(t, nil)
	card.West.Profile.Country = "Mongolia"

	view := NewMatchView(card, updated)

	assert.Equal(t, "assets/images/mongolia-flag.png", view.West.FlagSrc)
}

func TestNewMatchView_PlaceholdersOnlyForFailedSide(t *testing.T) {
	card := sampleCard(t, func(m *api.MockStore) {
		m.RikishiErrors["east-rikishi-0"] = errors.New("unavailable")
	})

	view := NewMatchView(card, updated)

	east := view.East
	assert.False(t, east.Loaded)
	assert.Equal(t, UnavailableShikona, east.Shikona)
	assert.Equal(t, UnavailableRank, east.Rank)
	assert.Equal(t, "0-0", east.Record)
	assert.Equal(t, "--", east.Age)
	assert.Equal(t, "--- cm (-- ft -- in)", east.Height)
	assert.Equal(t, "--- kg (--- lbs)", east.Weight)
	assert.Equal(t, "--", east.HighestRank)
	assert.Equal(t, "--", east.Heya)
	assert.Empty(t, east.Results)
	assert.Empty(t, east.PreviousBasho)
	assert.Empty(t, east.FlagSrc)
	assert.Equal(t, "assets/images/east-placeholder.png", east.PhotoSrc)

	assert.True(t, view.West.Loaded)
	assert.Equal(t, "Takayasu0", view.West.Shikona)
	// The head-to-head line falls back to the match list name
	assert.Equal(t, "Terunofuji0 4 - 2 Takayasu0", view.HeadToHead)
}

func TestNewMatchView_HeadToHeadFailed(t *testing.T) {
	card := sampleCard(t, func(m *api.MockStore) {
		m.HeadToHeadError = errors.New("unavailable")
	})

	view := NewMatchView(card, updated)

	assert.Equal(t, "N/A", view.HeadToHead)
	assert.True(t, view.East.Loaded)
}

func TestNewMatchView_LastMatch(t *testing.T) {
	card := sampleCard(t, func(m *api.MockStore) { m.Index = 2 })

	view := NewMatchView(card, updated)

	assert.True(t, view.HasPrevious)
	assert.False(t, view.HasNext)
	assert.Equal(t, "3 / 3", view.Position)
}

func TestNewMatchView_Absences(t *testing.T) {
	card := sampleCard(t, nil)
	card.East.Profile.BashoResults = append(card.East.Profile.BashoResults, store.DayResult{Day: 4, Opponent: "Abi", Result: shared.Absent})

	view := NewMatchView(card, updated)

	assert.Equal(t, "2-1-1", view.East.Summary)
}

func TestNewMatchView_SkipsUnknownOutcomes(t *testing.T) {
	card := sampleCard(t, nil)
	card.East.Profile.BashoResults = append(card.East.Profile.BashoResults, store.DayResult{Day: 4, Opponent: "Abi", Result: "draw"})

	view := NewMatchView(card, updated)

	assert.Len(t, view.East.Results, 3)
	assert.Equal(t, "2-1", view.East.Summary)
	assert.NotContains(t, Text(view), "draw")
}

func TestEmptyView(t *testing.T) {
	view := EmptyView(store.DefaultTournament, 1, time.Time{})

	assert.Equal(t, "Day: 1", view.DayNumber)
	assert.Equal(t, UnavailableShikona, view.East.Shikona)
	assert.Equal(t, UnavailableShikona, view.West.Shikona)
	assert.Equal(t, "N/A", view.HeadToHead)
	assert.Empty(t, view.LastUpdated)
}

// endregion

// region Text tests

func TestText_Loaded(t *testing.T) {
	text := Text(NewMatchView(sampleCard(t, nil), updated))

	assert.Contains(t, text, "**March Grand Sumo Tournament 2025**")
	assert.Contains(t, text, "Day: 3 | Match: Makuuchi #1 (1 / 3)")
	assert.Contains(t, text, "EAST: Terunofuji0 (Yokozuna)")
	assert.Contains(t, text, "WEST: Takayasu0 (Yokozuna)")
	assert.Contains(t, text, "- This basho: ○●○ (2-1)")
	assert.Contains(t, text, "- Last basho: Hatsu 2025 M1 9-6")
	assert.Contains(t, text, "Head-to-head: Terunofuji0 4 - 2 Takayasu0")
	assert.Contains(t, text, "Last updated: 2025-03-12 09:30:05")
}

func TestText_Placeholder(t *testing.T) {
	card := sampleCard(t, func(m *api.MockStore) {
		m.RikishiErrors["west-rikishi-0"] = errors.New("unavailable")
	})

	text := Text(NewMatchView(card, updated))

	assert.Contains(t, text, "WEST: Data unavailable (Error loading data)")
	assert.Contains(t, text, "- Height: --- cm (-- ft -- in)")
}

// endregion

// region Terminal tests

func TestTerminal_ContainsBothSides(t *testing.T) {
	out := Terminal(NewMatchView(sampleCard(t, nil), updated))

	assert.Contains(t, out, "March Grand Sumo Tournament 2025")
	assert.Contains(t, out, "Terunofuji0")
	assert.Contains(t, out, "Takayasu0")
	assert.Contains(t, out, "Head-to-head: Terunofuji0 4 - 2 Takayasu0")
}

func TestTerminal_Placeholder(t *testing.T) {
	card := sampleCard(t, func(m *api.MockStore) {
		m.RikishiErrors["east-rikishi-0"] = errors.New("unavailable")
	})

	out := Terminal(NewMatchView(card, updated))

	assert.Contains(t, out, UnavailableShikona)
}

// endregion
