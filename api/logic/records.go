/* records.go
 * Contains the logic for formatting, parsing and summarising win-loss records
 */

package logic

import (
	"fmt"
	"strconv"
	"strings"

	"sumo-data/api/shared"
)

// FormatRecord formats a record in the "wins-losses" form used on the banzuke
func FormatRecord(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

// ParseRecord parses a "wins-losses" record
// Preconditions: receives a record string, e.g. "8-7"
// Postconditions: returns wins and losses, or an error if the format is invalid or either side is negative
func ParseRecord(record string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(record), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid record format: %s", record)
	}

	wins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid wins in record %s: %w", record, err)
	}
	losses, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid losses in record %s: %w", record, err)
	}
	if wins < 0 || losses < 0 {
		return 0, 0, fmt.Errorf("invalid record format: %s", record)
	}
	return wins, losses, nil
}

// ValidateRecord checks that a record accounts for exactly the given number of days
func ValidateRecord(record string, day int) error {
	wins, losses, err := ParseRecord(record)
	if err != nil {
		return err
	}
	if wins+losses != day {
		return fmt.Errorf("record %s covers %d days, expected %d", record, wins+losses, day)
	}
	return nil
}

// ResultSummary counts the outcomes in a result strip
type ResultSummary struct {
	Wins     int
	Losses   int
	Absences int
}

// String formats the summary as a record, with absences appended when there are any
func (r ResultSummary) String() string {
	if r.Absences == 0 {
		return FormatRecord(r.Wins, r.Losses)
	}
	return fmt.Sprintf("%s-%d", FormatRecord(r.Wins, r.Losses), r.Absences)
}

// SummarizeOutcomes counts wins, losses and absences. Unknown outcomes are ignored
func SummarizeOutcomes(outcomes []shared.Outcome) ResultSummary {
	var summary ResultSummary
	for _, o := range outcomes {
		switch o {
		case shared.Win:
			summary.Wins++
		case shared.Loss:
			summary.Losses++
		case shared.Absent:
			summary.Absences++
		}
	}
	return summary
}
