/* terminal.go
 * Contains the styled console rendering of a MatchView
 */

package render

import (
	"fmt"
	"strings"

	"sumo-data/api/shared"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Italic(true)
	columnStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(36)
)

// Function to render a MatchView as a two column terminal card
// Preconditions: Receives the MatchView
// Postconditions: Returns the styled card, east on the left and west on the right
func Terminal(view MatchView) string {
	header := headerStyle.Render(view.TournamentName)
	sub := dimStyle.Render(fmt.Sprintf("%s  %s  (%s)", view.DayNumber, view.CurrentMatch, view.Position))

	columns := make([]string, 0, len(shared.Sides))
	for _, side := range shared.Sides {
		columns = append(columns, columnStyle.Render(sideTerminal(view.Side(side))))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	footer := []string{"Head-to-head: " + view.HeadToHead}
	if view.LastUpdated != "" {
		footer = append(footer, dimStyle.Render(view.LastUpdated))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, sub, body, strings.Join(footer, "\n"))
}

func sideTerminal(side SideView) string {
	lines := []string{dimStyle.Render(strings.ToUpper(string(side.Side)))}
	if side.Loaded {
		lines = append(lines, nameStyle.Render(side.Shikona))
		lines = append(lines, side.Rank)
	} else {
		lines = append(lines, errorStyle.Render(side.Shikona))
		lines = append(lines, errorStyle.Render(side.Rank))
	}
	lines = append(lines,
		"Record  "+side.Record,
		"Age     "+side.Age,
		"Height  "+side.Height,
		"Weight  "+side.Weight,
		"Highest "+side.HighestRank,
		"Heya    "+side.Heya,
	)
	if len(side.Results) > 0 {
		var strip strings.Builder
		for _, r := range side.Results {
			switch r.Class {
			case string(shared.Win):
				strip.WriteString(winStyle.Render(resultMarks[r.Class]))
			case string(shared.Loss):
				strip.WriteString(lossStyle.Render(resultMarks[r.Class]))
			default:
				strip.WriteString(dimStyle.Render(resultMarks[r.Class]))
			}
		}
		lines = append(lines, strip.String()+" "+side.Summary)
	}
	return strings.Join(lines, "\n")
}
