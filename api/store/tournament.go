/* tournament.go
 * Contains the methods that produce the tournament, the current day and the day's torikumi (match list)
 */

package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

const makuuchi = "Makuuchi"

var eastNames = []string{
	"Terunofuji", "Takakeisho", "Kirishima", "Hoshoryu", "Kotonowaka", "Abi",
	"Daieisho", "Wakamotoharu", "Ura", "Tobizaru", "Onosho", "Meisei",
	"Oho", "Takanosho", "Mitakeumi", "Tamawashi", "Hokutofuji", "Nishikifuji",
}

var westNames = []string{
	"Takayasu", "Ryuden", "Midorifuji", "Hiradoumi", "Gonoyama", "Shonannoumi",
	"Sadanoumi", "Atamifuji", "Kinbozan", "Ichiyamamoto", "Hokuseiho", "Churanoumi",
	"Takarafuji", "Myogiryu", "Kotoeko", "Takashonada", "Chiyoshoma", "Bushozan",
}

// banzuke is ordered from the top rank down
var banzuke = []string{
	"Yokozuna", "Ozeki", "Sekiwake", "Komusubi",
	"Maegashira #1", "Maegashira #2", "Maegashira #3",
	"Maegashira #4", "Maegashira #5", "Maegashira #6",
	"Maegashira #7", "Maegashira #8", "Maegashira #9",
	"Maegashira #10", "Maegashira #11", "Maegashira #12",
	"Maegashira #13", "Maegashira #14", "Maegashira #15",
	"Maegashira #16", "Maegashira #17",
}

// Function to initialise the data source with the current tournament, the current day and that day's matches
// Preconditions: Receives context
// Postconditions: Updates the tournament, day and match list, clamps the match cursor into the new list and
// returns the InitialData, or an error if the matches could not be generated
func (s *Store) Initialize(ctx context.Context) (InitialData, error) {
	if err := ctx.Err(); err != nil {
		return InitialData{}, err
	}

	s.mu.Lock()
	s.tournament = s.configured
	day, err := s.computeCurrentDay()
	if err != nil {
		s.mu.Unlock()
		return InitialData{}, fmt.Errorf("error initialising data: %w", err)
	}
	s.currentDay = day
	s.mu.Unlock()

	matches, err := s.FetchDailyMatches(ctx, day)
	if err != nil {
		return InitialData{}, fmt.Errorf("error initialising data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.WithFields(logrus.Fields{
		"tournament": s.tournament.Name,
		"day":        s.currentDay,
		"matches":    len(matches),
	}).Debug("data source initialised")

	return InitialData{
		Tournament: s.tournament,
		Day:        s.currentDay,
		Matches:    matches,
	}, nil
}

// computeCurrentDay returns the basho day for the store's clock, clamped to 1..15. Callers must hold s.mu
func (s *Store) computeCurrentDay() (int, error) {
	start, err := time.Parse(dateLayout, s.tournament.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid tournament start date %q: %w", s.tournament.StartDate, err)
	}
	elapsed := s.now().UTC().Sub(start)
	dayDiff := int(math.Floor(elapsed.Hours() / 24))
	return clamp(dayDiff+1, 1, bashoDays), nil
}

// Function to generate the matches for a specific day. The generated list replaces the current one
// Preconditions: Receives context and a day between 1 and 15
// Postconditions: Returns a copy of the day's matches, or ErrUnknownDay if the day is out of range
func (s *Store) FetchDailyMatches(ctx context.Context, day int) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if day < 1 || day > bashoDays {
		return nil, fmt.Errorf("error fetching matches for day %d: %w", day, ErrUnknownDay)
	}

	// Senshuraku has more bouts
	matchCount := 15
	if day == bashoDays {
		matchCount = 21
	}

	matches := make([]Match, 0, matchCount)
	for i := 0; i < matchCount; i++ {
		matches = append(matches, Match{
			Division:    makuuchi,
			MatchNumber: i + 1,
			East: Competitor{
				ID:      fmt.Sprintf("east-rikishi-%d", i),
				Shikona: generateShikona(eastNames, i),
				Rank:    generateRank(i),
			},
			West: Competitor{
				ID:      fmt.Sprintf("west-rikishi-%d", i),
				Shikona: generateShikona(westNames, i),
				Rank:    generateRank(i),
			},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = matches
	s.matchIndex = clamp(s.matchIndex, 0, len(matches)-1)

	out := make([]Match, len(matches))
	copy(out, matches)
	return out, nil
}

func generateShikona(names []string, index int) string {
	return names[index%len(names)]
}

// generateRank gives the top bouts the top ranks
func generateRank(index int) string {
	return banzuke[min(index, len(banzuke)-1)]
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
