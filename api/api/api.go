/* api.go
 * This file contains the public methods for interacting with this package. Consumers (the app controller, the web
 * server and the discord bot) should only call the methods in this file, not the sub packages for store and logic
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sumo-data/api/external"
	"sumo-data/api/logic"
	"sumo-data/api/shared"
	"sumo-data/api/store"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoMatches     = errors.New("no matches available")
	ErrNoSuchRikishi = errors.New("no rikishi found")
)

// API provides methods for interacting with the sumo data layer
type API struct {
	Store  store.Interface
	logger *logrus.Logger
}

// NewAPI creates a new API instance backed by a generated data store
func NewAPI(cfg store.Config) (*API, error) {
	s, err := store.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return NewAPIWithStore(s, cfg.Logger), nil
}

// NewAPIWithStore wraps an existing store. A nil logger uses the logrus standard logger
func NewAPIWithStore(s store.Interface, logger *logrus.Logger) *API {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &API{Store: s, logger: logger}
}

// Initialize loads the tournament, the current day and the day's matches. It is also used for every refresh
func (a *API) Initialize(ctx context.Context) (store.InitialData, error) {
	data, err := a.Store.Initialize(ctx)
	if err != nil {
		return store.InitialData{}, fmt.Errorf("error initialising data source: %w", err)
	}
	return data, nil
}

// Function to build the card for the match under the cursor. Both profiles and the head-to-head record are
// requested, a failure in one of them is recorded on the card instead of failing the whole card
// Preconditions: Receives context
// Postconditions: Returns the MatchCard, or ErrNoMatches if there is no current match
func (a *API) CurrentCard(ctx context.Context) (MatchCard, error) {
	pos, ok := a.Store.CurrentPosition()
	if !ok {
		return MatchCard{}, ErrNoMatches
	}
	return a.buildCard(ctx, pos), nil
}

// Next moves the cursor forward and reports whether it moved
func (a *API) Next() bool {
	_, ok := a.Store.NextMatch()
	return ok
}

// Previous moves the cursor back and reports whether it moved
func (a *API) Previous() bool {
	_, ok := a.Store.PreviousMatch()
	return ok
}

// Select moves the cursor to a zero based match index and reports whether it moved
func (a *API) Select(index int) bool {
	_, ok := a.Store.SelectMatch(index)
	return ok
}

// Function to move the cursor to the match of a rikishi. The query may be a partial or misspelt shikona
// Preconditions: Receives a shikona query
// Postconditions: Moves the cursor and returns the zero based index of the match, or ErrNoSuchRikishi
func (a *API) Jump(query string) (int, error) {
	index, _, err := a.findCompetitor(query)
	if err != nil {
		return 0, err
	}
	if _, ok := a.Store.SelectMatch(index); !ok {
		return 0, fmt.Errorf("error selecting match %d: %w", index+1, ErrNoMatches)
	}
	return index, nil
}

// Function to get the profile of a rikishi on today's schedule by id or by shikona
// Preconditions: Receives context and either a competitor id (e.g. east-rikishi-3) or a shikona query
// Postconditions: Returns the profile, or ErrNoSuchRikishi if nobody on the schedule matches
func (a *API) Rikishi(ctx context.Context, query string) (*store.RikishiProfile, error) {
	query = strings.TrimSpace(query)
	for _, match := range a.Store.Matches() {
		for _, side := range shared.Sides {
			if c := match.Competitor(side); c.ID == query {
				return a.Store.FetchRikishi(ctx, c)
			}
		}
	}

	_, competitor, err := a.findCompetitor(query)
	if err != nil {
		return nil, err
	}
	return a.Store.FetchRikishi(ctx, competitor)
}

// Function to get the profiles of several rikishi on today's schedule by shikona
// Preconditions: Receives context and the shikona queries
// Postconditions: Returns the profiles of every query that matched, in query order, and the queries that did not
// match. Returns ErrNoMatches if there is no schedule, or the first profile error
func (a *API) RikishiProfiles(ctx context.Context, queries []string) ([]*store.RikishiProfile, []string, error) {
	matches := a.Store.Matches()
	if len(matches) == 0 {
		return nil, nil, ErrNoMatches
	}

	competitors := make(map[string]store.Competitor, len(matches)*2)
	names := make([]string, 0, len(matches)*2)
	for _, match := range matches {
		for _, side := range shared.Sides {
			c := match.Competitor(side)
			if _, seen := competitors[c.Shikona]; !seen {
				competitors[c.Shikona] = c
				names = append(names, c.Shikona)
			}
		}
	}

	found, invalid := logic.CheckShikona(queries, names)
	profiles := make([]*store.RikishiProfile, 0, len(found))
	for _, name := range found {
		profile, err := a.Store.FetchRikishi(ctx, competitors[name])
		if err != nil {
			return nil, invalid, fmt.Errorf("error fetching %s: %w", name, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, invalid, nil
}

// HeadToHead returns a freshly drawn head-to-head record for two competitor ids
func (a *API) HeadToHead(ctx context.Context, eastID string, westID string) (store.HeadToHead, error) {
	h2h, err := a.Store.FetchHeadToHead(ctx, eastID, westID)
	if err != nil {
		return store.HeadToHead{}, fmt.Errorf("error fetching head-to-head: %w", err)
	}
	return h2h, nil
}

// Tournament returns the tournament of the last initialisation
func (a *API) Tournament() store.Tournament {
	return a.Store.Tournament()
}

// Matches returns today's matches
func (a *API) Matches() []store.Match {
	return a.Store.Matches()
}

// GetTournamentInfo gets the following information about the tournament: Name, Location, Dates, Day, Matches and
// a link to the day's schedule. It returns a string slice with the contents attribute : value
func (a *API) GetTournamentInfo() []string {
	t := a.Store.Tournament()
	day := a.Store.CurrentDay()
	return []string{
		fmt.Sprintf("Tournament Name: %s", t.Name),
		fmt.Sprintf("Location: %s", t.Location),
		fmt.Sprintf("Dates: %s to %s", t.StartDate, t.EndDate),
		fmt.Sprintf("Day: %d", day),
		fmt.Sprintf("Matches today: %d", len(a.Store.Matches())),
		fmt.Sprintf("Schedule: %s", external.TorikumiURL(day)),
	}
}

func (a *API) buildCard(ctx context.Context, pos store.Position) MatchCard {
	match := pos.Match
	card := MatchCard{
		Tournament: pos.Tournament,
		Day:        pos.Day,
		Index:      pos.Index,
		Total:      pos.Total,
		Match:      match,
	}

	for _, side := range shared.Sides {
		competitor := match.Competitor(side)
		profile, err := a.Store.FetchRikishi(ctx, competitor)
		if err != nil {
			a.logger.WithFields(logrus.Fields{
				"side": side,
				"id":   competitor.ID,
			}).WithError(err).Warn("failed to load rikishi profile")
		}
		sideCard := SideCard{Side: side, Competitor: competitor, Profile: profile, Err: err}
		if side == shared.West {
			card.West = sideCard
		} else {
			card.East = sideCard
		}
	}

	h2h, err := a.Store.FetchHeadToHead(ctx, match.East.ID, match.West.ID)
	if err != nil {
		a.logger.WithFields(logrus.Fields{
			"east": match.East.ID,
			"west": match.West.ID,
		}).WithError(err).Warn("failed to load head-to-head")
		card.HeadToHeadErr = err
	} else {
		card.HeadToHead = &h2h
	}

	return card
}

// findCompetitor searches every shikona on today's schedule for the closest match to query
func (a *API) findCompetitor(query string) (int, store.Competitor, error) {
	matches := a.Store.Matches()
	if len(matches) == 0 {
		return 0, store.Competitor{}, ErrNoMatches
	}

	names := make([]string, 0, len(matches)*2)
	for _, match := range matches {
		names = append(names, match.East.Shikona, match.West.Shikona)
	}

	name, ok := logic.FindShikona(query, names)
	if !ok {
		return 0, store.Competitor{}, fmt.Errorf("%q: %w", logic.NormaliseQuery(query), ErrNoSuchRikishi)
	}

	for i, match := range matches {
		for _, side := range shared.Sides {
			if c := match.Competitor(side); c.Shikona == name {
				return i, c, nil
			}
		}
	}
	return 0, store.Competitor{}, fmt.Errorf("%q: %w", name, ErrNoSuchRikishi)
}
