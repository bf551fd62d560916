/* search.go
 * Contains the logic for matching user supplied shikona against the rikishi on the day's schedule
 */

package logic

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// NormaliseQuery strips the quote characters chat clients wrap multi word arguments in
func NormaliseQuery(query string) string {
	query = strings.ReplaceAll(query, "\"", "")
	query = strings.ReplaceAll(query, "“", "")
	query = strings.ReplaceAll(query, "”", "")
	return strings.TrimSpace(query)
}

// FindShikona matches a user supplied name against a list of known shikona.
// Preconditions: receives the query and the list of valid shikona
// Postconditions: returns the matched shikona as it appears in the list and true, or false if nothing matched.
// An exact (case insensitive) match always wins, otherwise the closest fuzzy match is used
func FindShikona(query string, shikona []string) (string, bool) {
	query = strings.ToLower(NormaliseQuery(query))
	if query == "" {
		return "", false
	}

	// Lowercase both sides for better matching
	lookup := make(map[string]string)
	var lowered []string
	for _, name := range shikona {
		lower := strings.ToLower(name)
		if _, seen := lookup[lower]; seen {
			continue
		}
		lookup[lower] = name
		lowered = append(lowered, lower)
	}

	if name, ok := lookup[query]; ok {
		return name, true
	}

	ranks := fuzzy.RankFind(query, lowered)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return lookup[ranks[0].Target], true
}

// CheckShikona resolves every name in names, returning the resolved shikona and the names that did not match
func CheckShikona(names []string, shikona []string) ([]string, []string) {
	var found []string
	var invalid []string
	for _, name := range names {
		match, ok := FindShikona(name, shikona)
		if !ok {
			invalid = append(invalid, name)
			continue
		}
		found = append(found, match)
	}
	return found, invalid
}
