/* controller.go
 * Contains the app controller. It sequences initialisation, rendering, navigation between matches and the periodic
 * refresh, and keeps the last rendered view for the web server and the bot
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sumo-data/api/api"
	"sumo-data/render"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var ErrRefreshThrottled = errors.New("refresh requested too soon, try again shortly")

const (
	DefaultRefreshInterval       = 60 * time.Second
	DefaultManualRefreshCooldown = 5 * time.Second
)

// Config holds the values used to construct a Controller
type Config struct {
	RefreshInterval time.Duration
	// Minimum time between user triggered refreshes. Zero disables throttling
	ManualRefreshCooldown time.Duration
	Now                   func() time.Time
	Logger                *logrus.Logger
}

// Status describes the page level state
type Status struct {
	Loading     bool      `json:"loading"`
	Error       string    `json:"error,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
	MatchIndex  int       `json:"match_index"`
	MatchCount  int       `json:"match_count"`
}

type Controller struct {
	api      *api.API
	notifier Notifier
	limiter  *rate.Limiter
	interval time.Duration
	now      func() time.Time
	logger   *logrus.Logger

	// refreshMu serialises refreshes so a manual refresh and a tick never interleave
	refreshMu sync.Mutex

	mu          sync.RWMutex
	loading     bool
	initErr     error
	lastUpdated time.Time
	view        render.MatchView
	card        *api.MatchCard
}

// Function for initialising the Controller
// Preconditions: Receives the API, a Notifier (nil drops events) and a Config
// Postconditions: Returns pointer to the Controller. Nothing is loaded until Start or Refresh is called
func NewController(a *api.API, notifier Notifier, cfg Config) *Controller {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	limit := rate.Inf
	if cfg.ManualRefreshCooldown > 0 {
		limit = rate.Every(cfg.ManualRefreshCooldown)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Controller{
		api:      a,
		notifier: notifier,
		limiter:  rate.NewLimiter(limit, 1),
		interval: interval,
		now:      now,
		logger:   logger,
	}
}

// Function to load the first match and start the refresh loop. The loop runs until ctx is cancelled
// Preconditions: Receives context
// Postconditions: Returns the initialisation error, if any. The loop is started either way so a later tick can
// recover from a failed start
func (c *Controller) Start(ctx context.Context) error {
	c.setLoading(true)
	err := c.load(ctx)
	c.setLoading(false)
	if err != nil {
		c.logger.WithError(err).Error("failed to initialise app")
	}

	go c.run(ctx)
	return err
}

// run ticks until ctx is done
func (c *Controller) run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("refresh loop stopped")
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.logger.WithError(err).Warn("scheduled refresh failed")
			}
		}
	}
}

// Function to reload the tournament and matches and re-render the current match
// Preconditions: Receives context
// Postconditions: Updates the view and timestamp and notifies pages with a refresh event, or records and returns the
// error. Nothing is retried
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.load(ctx); err != nil {
		return err
	}
	c.notifier.Notify(Event{Type: EventRefresh, MatchIndex: c.api.Store.MatchIndex(), Timestamp: c.LastUpdated()})
	return nil
}

// ManualRefresh is Refresh for user requests. It returns ErrRefreshThrottled when called again within the cooldown
func (c *Controller) ManualRefresh(ctx context.Context) error {
	if !c.limiter.Allow() {
		return ErrRefreshThrottled
	}
	return c.Refresh(ctx)
}

// Next moves to the next match and reports whether the cursor moved
func (c *Controller) Next(ctx context.Context) bool {
	if !c.api.Next() {
		return false
	}
	c.navigated(ctx)
	return true
}

// Previous moves to the previous match and reports whether the cursor moved
func (c *Controller) Previous(ctx context.Context) bool {
	if !c.api.Previous() {
		return false
	}
	c.navigated(ctx)
	return true
}

// Select moves to the zero based match index and reports whether it is valid
func (c *Controller) Select(ctx context.Context, index int) bool {
	if !c.api.Select(index) {
		return false
	}
	c.navigated(ctx)
	return true
}

// Jump moves to the match of the rikishi closest to query and returns its zero based index
func (c *Controller) Jump(ctx context.Context, query string) (int, error) {
	index, err := c.api.Jump(query)
	if err != nil {
		return 0, err
	}
	c.navigated(ctx)
	return index, nil
}

// View returns the last rendered view
func (c *Controller) View() render.MatchView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// Card returns the last rendered card, or api.ErrNoMatches before the first successful render
func (c *Controller) Card() (api.MatchCard, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.card == nil {
		return api.MatchCard{}, api.ErrNoMatches
	}
	return *c.card, nil
}

// Status returns the page level state
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	status := Status{
		Loading:     c.loading,
		LastUpdated: c.lastUpdated,
	}
	if pos, ok := c.api.Store.CurrentPosition(); ok {
		status.MatchIndex = pos.Index
		status.MatchCount = pos.Total
	}
	if c.initErr != nil {
		status.Error = c.initErr.Error()
	}
	return status
}

// LastUpdated returns the time of the last successful load
func (c *Controller) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdated
}

// API returns the API the controller drives
func (c *Controller) API() *api.API {
	return c.api
}

// load initialises the data source and renders the current match
func (c *Controller) load(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	data, err := c.api.Initialize(ctx)
	if err != nil {
		c.mu.Lock()
		c.initErr = err
		// Keep showing the last good match after a failed refresh
		if c.card == nil {
			c.view = render.EmptyView(c.api.Tournament(), c.api.Store.CurrentDay(), c.lastUpdated)
		}
		c.mu.Unlock()
		return fmt.Errorf("error loading data: %w", err)
	}

	updated := c.now()
	c.mu.Lock()
	c.initErr = nil
	c.lastUpdated = updated
	c.mu.Unlock()

	c.render(ctx)

	c.logger.WithFields(logrus.Fields{
		"tournament": data.Tournament.Name,
		"day":        data.Day,
		"matches":    len(data.Matches),
	}).Info("match data loaded")
	return nil
}

// render rebuilds the view for the match under the cursor
func (c *Controller) render(ctx context.Context) {
	updated := c.LastUpdated()
	card, err := c.api.CurrentCard(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.WithError(err).Warn("no match to render")
		c.card = nil
		c.view = render.EmptyView(c.api.Tournament(), c.api.Store.CurrentDay(), updated)
		return
	}
	c.card = &card
	c.view = render.NewMatchView(card, updated)
}

func (c *Controller) navigated(ctx context.Context) {
	c.render(ctx)
	index := c.api.Store.MatchIndex()
	c.logger.WithField("match_index", index).Debug("match selected")
	c.notifier.Notify(Event{Type: EventNavigate, MatchIndex: index, Timestamp: c.now()})
}

func (c *Controller) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}
