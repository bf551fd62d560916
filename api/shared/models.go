/* models.go
 * This file contain the types that are shared between sub packages
 */

package shared

// Side is the half of the dohyo a rikishi enters from
type Side string

const (
	East Side = "east"
	West Side = "west"
)

// Sides lists both sides in render order
var Sides = []Side{East, West}

// Outcome is the result of a single bout in the current basho
type Outcome string

const (
	Win    Outcome = "win"
	Loss   Outcome = "loss"
	Absent Outcome = "absent"
)

// Valid reports whether o is one of the known outcomes
func (o Outcome) Valid() bool {
	switch o {
	case Win, Loss, Absent:
		return true
	}
	return false
}
