/* models.go
 * Contains the web server configuration and the JSON response bodies
 */

package web

import (
	"html/template"

	"sumo-data/api/store"
	"sumo-data/app"

	"github.com/sirupsen/logrus"
)

// Config holds the configuration for the web server
type Config struct {
	Addr        string
	CORSOrigins []string
	// Directory served under /assets/, defaults to "assets"
	AssetsDir  string
	Controller *app.Controller
	Hub        *Hub
	Logger     *logrus.Logger
}

// Server serves the match page, the JSON API and the websocket feed
type Server struct {
	controller *app.Controller
	hub        *Hub
	logger     *logrus.Logger
	templates  *template.Template
	assetsDir  string
	origins    []string
}

// ErrorResponse is the body of every JSON error
type ErrorResponse struct {
	Error string `json:"error"`
}

// NavigationResponse is returned by the navigation endpoints when JSON is requested
type NavigationResponse struct {
	Moved      bool `json:"moved"`
	MatchIndex int  `json:"match_index"`
	MatchCount int  `json:"match_count"`
}

// TournamentResponse is returned by GET /api/tournament
type TournamentResponse struct {
	Tournament store.Tournament `json:"tournament"`
	Day        int              `json:"day"`
	MatchCount int              `json:"match_count"`
	Info       []string         `json:"info"`
}

// MatchesResponse is returned by GET /api/matches
type MatchesResponse struct {
	Day        int           `json:"day"`
	MatchIndex int           `json:"match_index"`
	Matches    []store.Match `json:"matches"`
}

// SideResponse is one side of a MatchResponse. Profile is omitted and Error set when the profile failed to load
type SideResponse struct {
	Side       string                `json:"side"`
	Competitor store.Competitor      `json:"competitor"`
	Profile    *store.RikishiProfile `json:"profile,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// MatchResponse is returned by GET /api/match
type MatchResponse struct {
	Tournament      store.Tournament  `json:"tournament"`
	Day             int               `json:"day"`
	MatchIndex      int               `json:"match_index"`
	MatchCount      int               `json:"match_count"`
	Match           store.Match       `json:"match"`
	East            SideResponse      `json:"east"`
	West            SideResponse      `json:"west"`
	HeadToHead      *store.HeadToHead `json:"head_to_head,omitempty"`
	HeadToHeadError string            `json:"head_to_head_error,omitempty"`
	LastUpdated     string            `json:"last_updated"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	ActiveClients int    `json:"active_clients"`
}
