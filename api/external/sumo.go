/* sumo.go
 * Contains the builders for links to the official Japan Sumo Association site and for the local image assets shown
 * on the match page. Nothing in this package performs network I/O
 */

package external

import (
	"fmt"
	"net/url"
	"strings"

	"sumo-data/api/shared"
)

// BaseURL is the root of the official English site
const BaseURL = "https://www.sumo.or.jp/En"

const assetDir = "assets/images"

// Function to build the link to a day's torikumi (match schedule) on the official site
// Preconditions: Receives the basho day
// Postconditions: Returns the schedule URL for the day, days outside 1-15 are clamped
func TorikumiURL(day int) string {
	day = max(1, min(day, 15))
	u, _ := url.Parse(BaseURL + "/hon_basho_torikumi/index/1/")
	q := u.Query()
	q.Set("day", fmt.Sprint(day))
	u.RawQuery = q.Encode()
	return u.String()
}

// Function to build the search link for a rikishi on the official site
// Preconditions: Receives a shikona
// Postconditions: Returns the rikishi search URL with the shikona query escaped
func RikishiSearchURL(shikona string) string {
	u, _ := url.Parse(BaseURL + "/sumo_data/rikishi/search/")
	q := u.Query()
	q.Set("shikona", strings.TrimSpace(shikona))
	u.RawQuery = q.Encode()
	return u.String()
}

// FlagAsset returns the flag image for a country. Anything other than Mongolia uses the Japanese flag
func FlagAsset(country string) string {
	if strings.EqualFold(strings.TrimSpace(country), "Mongolia") {
		return assetDir + "/mongolia-flag.png"
	}
	return assetDir + "/japan-flag.png"
}

// PhotoAsset returns the placeholder photo for a side
func PhotoAsset(side shared.Side) string {
	if side == shared.West {
		return assetDir + "/west-placeholder.png"
	}
	return assetDir + "/east-placeholder.png"
}
