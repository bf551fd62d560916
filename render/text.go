/* text.go
 * Contains the plain text rendering of a MatchView used for chat messages
 */

package render

import (
	"fmt"
	"strings"

	"sumo-data/api/shared"
)

var resultMarks = map[string]string{
	string(shared.Win):    "○",
	string(shared.Loss):   "●",
	string(shared.Absent): "-",
}

// Function to render a MatchView as plain text
// Preconditions: Receives the MatchView
// Postconditions: Returns a multi line string with the tournament, both sides and the head-to-head line
func Text(view MatchView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**\n", view.TournamentName))
	b.WriteString(fmt.Sprintf("%s | %s (%s)\n\n", view.DayNumber, view.CurrentMatch, view.Position))

	for _, side := range shared.Sides {
		b.WriteString(sideText(view.Side(side)))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Head-to-head: %s\n", view.HeadToHead))
	if view.LastUpdated != "" {
		b.WriteString(view.LastUpdated)
		b.WriteString("\n")
	}
	return b.String()
}

func sideText(side SideView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s (%s)\n", strings.ToUpper(string(side.Side)), side.Shikona, side.Rank))
	b.WriteString(fmt.Sprintf("- Record: %s\n", side.Record))
	b.WriteString(fmt.Sprintf("- Age: %s\n", side.Age))
	b.WriteString(fmt.Sprintf("- Height: %s\n", side.Height))
	b.WriteString(fmt.Sprintf("- Weight: %s\n", side.Weight))
	b.WriteString(fmt.Sprintf("- Highest rank: %s\n", side.HighestRank))
	b.WriteString(fmt.Sprintf("- Heya: %s\n", side.Heya))
	if !side.Loaded {
		return b.String()
	}

	b.WriteString(fmt.Sprintf("- Hometown: %s, %s\n", side.Hometown, side.Country))
	if len(side.Results) > 0 {
		marks := make([]string, 0, len(side.Results))
		for _, r := range side.Results {
			marks = append(marks, resultMarks[r.Class])
		}
		b.WriteString(fmt.Sprintf("- This basho: %s (%s)\n", strings.Join(marks, ""), side.Summary))
	}
	if len(side.PreviousBasho) > 0 {
		last := side.PreviousBasho[0]
		b.WriteString(fmt.Sprintf("- Last basho: %s %s %s\n", last.Name, last.Rank, last.Record))
	}
	return b.String()
}
