/* rikishi.go
 * Contains the methods that generate and cache detailed rikishi profiles
 */

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sumo-data/api/logic"
	"sumo-data/api/shared"

	"github.com/sirupsen/logrus"
)

var heyas = []string{
	"Miyagino", "Takasago", "Isegahama", "Sadogatake", "Tokitsukaze",
	"Tagonoura", "Tomozuna", "Kise", "Oitekaze", "Dewanoumi",
	"Sakaigawa", "Kokonoe", "Arashio", "Shikoroyama", "Kasugano",
}

// sanyaku plus the top maegashira slot, ordered from the top
var highestRanks = []string{"Yokozuna", "Ozeki", "Sekiwake", "Komusubi", "Maegashira #1"}

var previousRanks = []string{
	"Yokozuna", "Ozeki", "Sekiwake", "Komusubi",
	"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8",
}

var resultOpponents = []string{"Takakeisho", "Kirishima", "Hoshoryu", "Kotonowaka", "Takayasu", "Abi"}

type bashoInfo struct {
	name     string
	location string
}

// The six honbasho in calendar order
var bashoCalendar = []bashoInfo{
	{name: "Hatsu", location: "Tokyo"},
	{name: "Haru", location: "Osaka"},
	{name: "Natsu", location: "Tokyo"},
	{name: "Nagoya", location: "Nagoya"},
	{name: "Aki", location: "Tokyo"},
	{name: "Kyushu", location: "Fukuoka"},
}

// Function to get the detailed profile of a rikishi. Profiles are generated on the first request for an id and
// the same pointer is returned for every later request
// Preconditions: Receives context and the Competitor from the match list
// Postconditions: Returns the cached or newly generated profile, or ErrEmptyID if the competitor has no id
func (s *Store) FetchRikishi(ctx context.Context, competitor Competitor) (*RikishiProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if competitor.ID == "" {
		return nil, fmt.Errorf("error fetching rikishi %q: %w", competitor.Shikona, ErrEmptyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.rikishiCache[competitor.ID]; ok {
		return cached, nil
	}

	profile := &RikishiProfile{
		ID:      competitor.ID,
		Shikona: competitor.Shikona,
		Rank:    competitor.Rank,
		Age:     s.rng.Intn(15) + 20,
		// 170-199 cm, 100-179 kg
		HeightCM: s.rng.Intn(30) + 170,
		WeightKG: s.rng.Intn(80) + 100,
	}
	// Mostly Japanese
	if s.rng.Float64() > 0.15 {
		profile.Country = "Japan"
	} else {
		profile.Country = "Mongolia"
	}
	if s.rng.Float64() > 0.15 {
		profile.Hometown = "Tokyo"
	} else {
		profile.Hometown = "Ulaanbaatar"
	}
	profile.Heya = s.pick(heyas)
	profile.HighestRank = s.generateHighestRank(competitor.Rank)
	profile.CurrentRecord = s.generateRecord()
	profile.BashoResults = s.generateCurrentBashoResults()
	profile.PreviousBasho = s.generatePreviousBashoResults()
	profile.HeightImperial = logic.HeightImperial(profile.HeightCM).String()
	profile.WeightImperial = logic.WeightImperial(profile.WeightKG).String()

	s.rikishiCache[competitor.ID] = profile

	s.logger.WithFields(logrus.Fields{
		"id":      profile.ID,
		"shikona": profile.Shikona,
		"record":  profile.CurrentRecord,
	}).Debug("generated rikishi profile")

	return profile, nil
}

// generateHighestRank favours ranks at or above the current one
func (s *Store) generateHighestRank(currentRank string) string {
	switch {
	case strings.Contains(currentRank, "Yokozuna"):
		return "Yokozuna"
	case strings.Contains(currentRank, "Ozeki"):
		if s.rng.Float64() > 0.2 {
			return "Ozeki"
		}
		return "Yokozuna"
	case strings.Contains(currentRank, "Sekiwake"):
		return highestRanks[s.rng.Intn(3)]
	case strings.Contains(currentRank, "Komusubi"):
		return highestRanks[s.rng.Intn(4)]
	}

	// Maegashira have a 30% chance of having been sanyaku
	if s.rng.Float64() > 0.7 {
		return highestRanks[s.rng.Intn(len(highestRanks))]
	}
	return currentRank
}

// generateRecord returns a record whose wins and losses add up to the current day
func (s *Store) generateRecord() string {
	wins := s.rng.Intn(s.currentDay + 1)
	return logic.FormatRecord(wins, s.currentDay-wins)
}

func (s *Store) generateCurrentBashoResults() []DayResult {
	results := make([]DayResult, 0, s.currentDay)
	for day := 1; day <= s.currentDay; day++ {
		opponent := s.pick(resultOpponents)

		var result shared.Outcome
		switch v := s.rng.Float64(); {
		case v > 0.95:
			result = shared.Absent
		case v > 0.5:
			result = shared.Win
		default:
			result = shared.Loss
		}

		results = append(results, DayResult{Day: day, Opponent: opponent, Result: result})
	}
	return results
}

// generatePreviousBashoResults walks backwards through the calendar from the last basho held before the current
// tournament's month
func (s *Store) generatePreviousBashoResults() []PreviousBasho {
	ref := s.tournamentStart()
	month := int(ref.Month()) - 1
	bashoIndex := month/2 - 1
	if bashoIndex < 0 {
		bashoIndex = len(bashoCalendar) - 1
	}

	previous := make([]PreviousBasho, 0, len(bashoCalendar))
	for i := 0; i < len(bashoCalendar); i++ {
		idx := (bashoIndex - i + len(bashoCalendar)) % len(bashoCalendar)
		info := bashoCalendar[idx]
		year := ref.Year()
		if idx > bashoIndex || month/2-1 < 0 {
			year--
		}
		wins := s.rng.Intn(15)

		previous = append(previous, PreviousBasho{
			Name:     fmt.Sprintf("%s %d", info.name, year),
			Location: info.location,
			Rank:     s.generatePreviousRank(i),
			Record:   logic.FormatRecord(wins, 15-wins),
		})
	}
	return previous
}

// generatePreviousRank lets older basho drift further from the top
func (s *Store) generatePreviousRank(bashoAgo int) string {
	volatility := min(bashoAgo+1, 3)
	rankIndex := s.rng.Intn(volatility * 2)
	return previousRanks[min(rankIndex, len(previousRanks)-1)]
}

// tournamentStart falls back to the clock when the tournament has not been initialised yet
func (s *Store) tournamentStart() time.Time {
	t := s.tournament
	if t.StartDate == "" {
		t = s.configured
	}
	start, err := time.Parse(dateLayout, t.StartDate)
	if err != nil {
		return s.now()
	}
	return start
}
