/* events.go
 * Contains the events the controller publishes after the page content changes
 */

package app

import "time"

// Event types
const (
	EventRefresh  = "refresh"
	EventNavigate = "navigate"
)

// Event is sent to every connected page after a refresh or a navigation
type Event struct {
	Type       string    `json:"type"`
	MatchIndex int       `json:"match_index"`
	Timestamp  time.Time `json:"timestamp"`
}

// Notifier receives controller events. Implementations must not block
type Notifier interface {
	Notify(event Event)
}

// NopNotifier drops every event
type NopNotifier struct{}

// Notify implements Notifier
func (NopNotifier) Notify(Event) {}
