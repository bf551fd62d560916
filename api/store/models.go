/* models.go
 * This file contain the structs that the data source produces: tournaments, the day's matches, rikishi profiles and
 * head-to-head records
 */

package store

import (
	"sumo-data/api/shared"
)

// Tournament describes the basho currently being shown. Dates use the YYYY-MM-DD layout
type Tournament struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Competitor is the short form of a rikishi as it appears in the torikumi list
type Competitor struct {
	ID      string `json:"id"`
	Shikona string `json:"shikona"`
	Rank    string `json:"rank"`
}

// Match is a single bout on the day's schedule
type Match struct {
	Division    string     `json:"division"`
	MatchNumber int        `json:"match_number"`
	East        Competitor `json:"east"`
	West        Competitor `json:"west"`
}

// Competitor returns the competitor on the given side of the match
func (m Match) Competitor(side shared.Side) Competitor {
	if side == shared.West {
		return m.West
	}
	return m.East
}

// DayResult is one entry in a rikishi's result strip for the current basho
type DayResult struct {
	Day      int            `json:"day"`
	Opponent string         `json:"opponent"`
	Result   shared.Outcome `json:"result"`
}

// PreviousBasho summarises a rikishi's performance in an earlier tournament
type PreviousBasho struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rank     string `json:"rank"`
	Record   string `json:"record"`
}

// RikishiProfile holds the detailed statistics of a rikishi. Profiles are generated once per id and then cached
type RikishiProfile struct {
	ID             string          `json:"id"`
	Shikona        string          `json:"shikona"`
	Rank           string          `json:"rank"`
	Age            int             `json:"age"`
	HeightCM       int             `json:"height_cm"`
	WeightKG       int             `json:"weight_kg"`
	HeightImperial string          `json:"height_imperial"`
	WeightImperial string          `json:"weight_imperial"`
	Country        string          `json:"country"`
	Hometown       string          `json:"hometown"`
	Heya           string          `json:"heya"`
	HighestRank    string          `json:"highest_rank"`
	CurrentRecord  string          `json:"current_record"`
	BashoResults   []DayResult     `json:"basho_results"`
	PreviousBasho  []PreviousBasho `json:"previous_basho"`
}

// HeadToHead is the career record between two rikishi
type HeadToHead struct {
	EastWins int `json:"east_wins"`
	WestWins int `json:"west_wins"`
}

// Position is the match under the cursor together with where it sits in the day, read in one step so the index
// always belongs to the match
type Position struct {
	Tournament Tournament
	Day        int
	Index      int
	Total      int
	Match      Match
}

// InitialData is returned by Initialize
type InitialData struct {
	Tournament Tournament `json:"tournament"`
	Day        int        `json:"day"`
	Matches    []Match    `json:"matches"`
}
