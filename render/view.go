/* view.go
 * Contains the projection of a MatchCard onto the strings shown on the match page. Every page element id maps to a
 * field here, so the HTML template, the chat card and the terminal card all show the same values
 */

package render

import (
	"fmt"
	"time"

	"sumo-data/api/api"
	"sumo-data/api/external"
	"sumo-data/api/logic"
	"sumo-data/api/shared"
	"sumo-data/api/store"
)

// Placeholder values shown for a side whose profile could not be loaded
const (
	UnavailableShikona = "Data unavailable"
	UnavailableRank    = "Error loading data"
	UnavailableRecord  = "0-0"
	UnavailableValue   = "--"
	UnavailableHeight  = "--- cm (-- ft -- in)"
	UnavailableWeight  = "--- kg (--- lbs)"
	NoHeadToHead       = "N/A"
)

// TimestampLayout is used for the last updated line
const TimestampLayout = "2006-01-02 15:04:05"

// ResultView is one day in a side's result strip. Class is the outcome (win, loss or absent)
type ResultView struct {
	Day      int
	Class    string
	Opponent string
}

// BashoView is one row of a side's previous basho list
type BashoView struct {
	Name     string
	Location string
	Rank     string
	Record   string
}

// SideView holds the values for the {side}-* elements
type SideView struct {
	Side        shared.Side
	Loaded      bool
	Shikona     string
	Rank        string
	FlagSrc     string
	Country     string
	Hometown    string
	PhotoSrc    string
	Record      string
	Age         string
	Height      string
	Weight      string
	HighestRank string
	Heya        string
	Summary     string
	ProfileURL  string

	Results       []ResultView
	PreviousBasho []BashoView
}

// MatchView holds the values for every element on the page
type MatchView struct {
	TournamentName string
	Location       string
	DayNumber      string
	CurrentMatch   string
	Position       string
	HasPrevious    bool
	HasNext        bool
	East           SideView
	West           SideView
	HeadToHead     string
	LastUpdated    string
}

// Side returns the view for the given side
func (v MatchView) Side(side shared.Side) SideView {
	if side == shared.West {
		return v.West
	}
	return v.East
}

// Function to project a MatchCard onto the page values
// Preconditions: Receives the card and the time the page was last refreshed
// Postconditions: Returns the MatchView. A side whose profile failed to load shows placeholders, a failed
// head-to-head shows N/A
func NewMatchView(card api.MatchCard, updated time.Time) MatchView {
	view := MatchView{
		TournamentName: card.Tournament.Name,
		Location:       card.Tournament.Location,
		DayNumber:      fmt.Sprintf("Day: %d", card.Day),
		CurrentMatch:   fmt.Sprintf("Match: %s #%d", card.Match.Division, card.Match.MatchNumber),
		Position:       fmt.Sprintf("%d / %d", card.Index+1, card.Total),
		HasPrevious:    card.Index > 0,
		HasNext:        card.Index < card.Total-1,
		East:           newSideView(card.East),
		West:           newSideView(card.West),
		HeadToHead:     headToHeadLine(card),
		LastUpdated:    "Last updated: " + updated.Format(TimestampLayout),
	}
	return view
}

// EmptyView is shown when no card could be built, e.g. before the first successful initialisation
func EmptyView(tournament store.Tournament, day int, updated time.Time) MatchView {
	view := MatchView{
		TournamentName: tournament.Name,
		Location:       tournament.Location,
		DayNumber:      fmt.Sprintf("Day: %d", day),
		CurrentMatch:   "Match: --",
		Position:       "0 / 0",
		East:           placeholderSide(shared.East),
		West:           placeholderSide(shared.West),
		HeadToHead:     NoHeadToHead,
	}
	if !updated.IsZero() {
		view.LastUpdated = "Last updated: " + updated.Format(TimestampLayout)
	}
	return view
}

func newSideView(side api.SideCard) SideView {
	if !side.Loaded() {
		return placeholderSide(side.Side)
	}

	p := side.Profile
	view := SideView{
		Side:        side.Side,
		Loaded:      true,
		Shikona:     p.Shikona,
		Rank:        p.Rank,
		FlagSrc:     external.FlagAsset(p.Country),
		Country:     p.Country,
		Hometown:    p.Hometown,
		PhotoSrc:    external.PhotoAsset(side.Side),
		Record:      p.CurrentRecord,
		Age:         fmt.Sprintf("%d years", p.Age),
		Height:      fmt.Sprintf("%d cm (%s)", p.HeightCM, p.HeightImperial),
		Weight:      fmt.Sprintf("%d kg (%s)", p.WeightKG, p.WeightImperial),
		HighestRank: p.HighestRank,
		Heya:        p.Heya,
		ProfileURL:  external.RikishiSearchURL(p.Shikona),
	}

	outcomes := make([]shared.Outcome, 0, len(p.BashoResults))
	for _, r := range p.BashoResults {
		// unknown outcomes have no mark or style
		if !r.Result.Valid() {
			continue
		}
		view.Results = append(view.Results, ResultView{Day: r.Day, Class: string(r.Result), Opponent: r.Opponent})
		outcomes = append(outcomes, r.Result)
	}
	view.Summary = logic.SummarizeOutcomes(outcomes).String()

	for _, b := range p.PreviousBasho {
		view.PreviousBasho = append(view.PreviousBasho, BashoView{
			Name:     b.Name,
			Location: b.Location,
			Rank:     b.Rank,
			Record:   b.Record,
		})
	}
	return view
}

// placeholderSide keeps the side's photo, every data field shows a placeholder
func placeholderSide(side shared.Side) SideView {
	return SideView{
		Side:        side,
		Shikona:     UnavailableShikona,
		Rank:        UnavailableRank,
		Hometown:    UnavailableValue,
		PhotoSrc:    external.PhotoAsset(side),
		Record:      UnavailableRecord,
		Age:         UnavailableValue,
		Height:      UnavailableHeight,
		Weight:      UnavailableWeight,
		HighestRank: UnavailableValue,
		Heya:        UnavailableValue,
	}
}

// headToHeadLine prefers the loaded profile's shikona over the one in the match list
func headToHeadLine(card api.MatchCard) string {
	if card.HeadToHead == nil || card.HeadToHeadErr != nil {
		return NoHeadToHead
	}
	east := card.Match.East.Shikona
	if card.East.Loaded() {
		east = card.East.Profile.Shikona
	}
	west := card.Match.West.Shikona
	if card.West.Loaded() {
		west = card.West.Profile.Shikona
	}
	return fmt.Sprintf("%s %d - %d %s", east, card.HeadToHead.EastWins, card.HeadToHead.WestWins, west)
}
