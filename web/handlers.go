/* handlers.go
 * Contains the HTTP handlers for the match page, the navigation endpoints, the JSON API and the websocket upgrade
 */

package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"sumo-data/api/api"
	"sumo-data/api/store"
	"sumo-data/app"
	"sumo-data/render"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Pages are served from this origin; CORS covers the JSON API only
	CheckOrigin: func(r *http.Request) bool { return true },
}

// pageData is the data passed to the index template
type pageData struct {
	View   render.MatchView
	Status app.Status
	Error  string
}

// HandleIndex renders the match page
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	status := s.controller.Status()
	data := pageData{View: s.controller.View(), Status: status, Error: status.Error}
	if msg := r.URL.Query().Get("error"); msg != "" {
		data.Error = msg
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index", data); err != nil {
		s.logger.WithError(err).Error("failed to render page")
	}
}

// HandleNext moves to the next match
func (s *Server) HandleNext(w http.ResponseWriter, r *http.Request) {
	moved := s.controller.Next(r.Context())
	s.navigationResponse(w, r, moved)
}

// HandlePrevious moves to the previous match
func (s *Server) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	moved := s.controller.Previous(r.Context())
	s.navigationResponse(w, r, moved)
}

// HandleSelect moves to the match numbered by the n query or form value. Numbers start at 1 as on the page
func (s *Server) HandleSelect(w http.ResponseWriter, r *http.Request) {
	value := r.FormValue("n")
	number, err := strconv.Atoi(value)
	if err != nil || !s.controller.Select(r.Context(), number-1) {
		if wantsJSON(r) {
			respondError(w, http.StatusBadRequest, errors.New("no match numbered "+value))
			return
		}
		http.Redirect(w, r, "/?error="+url.QueryEscape("No match numbered "+value), http.StatusSeeOther)
		return
	}
	s.navigationResponse(w, r, true)
}

// HandleJump moves to the match of the rikishi named by the q query or form value
func (s *Server) HandleJump(w http.ResponseWriter, r *http.Request) {
	query := r.FormValue("q")
	_, err := s.controller.Jump(r.Context(), query)
	if err != nil {
		if wantsJSON(r) {
			respondError(w, statusFor(err), err)
			return
		}
		http.Redirect(w, r, "/?error="+url.QueryEscape("No rikishi found for "+query), http.StatusSeeOther)
		return
	}
	s.navigationResponse(w, r, true)
}

// HandleTournament returns the tournament, the day and the summary lines
func (s *Server) HandleTournament(w http.ResponseWriter, r *http.Request) {
	a := s.controller.API()
	respondJSON(w, http.StatusOK, TournamentResponse{
		Tournament: a.Tournament(),
		Day:        a.Store.CurrentDay(),
		MatchCount: len(a.Matches()),
		Info:       a.GetTournamentInfo(),
	})
}

// HandleStatus returns the page level state
func (s *Server) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.controller.Status())
}

// HandleMatch returns the card currently shown on the page
func (s *Server) HandleMatch(w http.ResponseWriter, r *http.Request) {
	card, err := s.controller.Card()
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, newMatchResponse(card, s.controller.View().LastUpdated))
}

// HandleMatches returns the day's schedule
func (s *Server) HandleMatches(w http.ResponseWriter, r *http.Request) {
	a := s.controller.API()
	respondJSON(w, http.StatusOK, MatchesResponse{
		Day:        a.Store.CurrentDay(),
		MatchIndex: a.Store.MatchIndex(),
		Matches:    a.Matches(),
	})
}

// HandleRikishi returns a profile by competitor id or shikona
func (s *Server) HandleRikishi(w http.ResponseWriter, r *http.Request) {
	profile, err := s.controller.API().Rikishi(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleHeadToHead returns a head-to-head record. Missing ids default to the current match
func (s *Server) HandleHeadToHead(w http.ResponseWriter, r *http.Request) {
	eastID := r.URL.Query().Get("east")
	westID := r.URL.Query().Get("west")
	if eastID == "" && westID == "" {
		if match, ok := s.controller.API().Store.CurrentMatch(); ok {
			eastID, westID = match.East.ID, match.West.ID
		}
	}

	h2h, err := s.controller.API().HeadToHead(r.Context(), eastID, westID)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, h2h)
}

// HandleRefresh reloads the data. Requests inside the cooldown get 429
func (s *Server) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.ManualRefresh(r.Context()); err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, s.controller.Status())
}

// HandleHealth returns service health
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Service:       "sumo-data",
		ActiveClients: s.hub.ClientCount(),
	})
}

// HandleWebSocket upgrades the connection and registers the page with the hub
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := NewClient(uuid.New().String(), conn, s.hub)
	if !s.hub.Register(c) {
		conn.Close()
		return
	}

	// The request context ends when this handler returns, the pumps stop on close instead
	ctx := context.WithoutCancel(r.Context())
	go c.WritePump(ctx)
	go c.ReadPump(ctx)
}

func (s *Server) navigationResponse(w http.ResponseWriter, r *http.Request, moved bool) {
	if !wantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	status := s.controller.Status()
	respondJSON(w, http.StatusOK, NavigationResponse{
		Moved:      moved,
		MatchIndex: status.MatchIndex,
		MatchCount: status.MatchCount,
	})
}

func newMatchResponse(card api.MatchCard, lastUpdated string) MatchResponse {
	resp := MatchResponse{
		Tournament:  card.Tournament,
		Day:         card.Day,
		MatchIndex:  card.Index,
		MatchCount:  card.Total,
		Match:       card.Match,
		East:        newSideResponse(card.East),
		West:        newSideResponse(card.West),
		HeadToHead:  card.HeadToHead,
		LastUpdated: strings.TrimPrefix(lastUpdated, "Last updated: "),
	}
	if card.HeadToHeadErr != nil {
		resp.HeadToHeadError = card.HeadToHeadErr.Error()
	}
	return resp
}

func newSideResponse(side api.SideCard) SideResponse {
	resp := SideResponse{Side: string(side.Side), Competitor: side.Competitor, Profile: side.Profile}
	if side.Err != nil {
		resp.Error = side.Err.Error()
		resp.Profile = nil
	}
	return resp
}

// statusFor maps the sentinel errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrRefreshThrottled):
		return http.StatusTooManyRequests
	case errors.Is(err, api.ErrNoSuchRikishi), errors.Is(err, api.ErrNoMatches):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmptyID), errors.Is(err, store.ErrUnknownDay):
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, ErrorResponse{Error: err.Error()})
}
