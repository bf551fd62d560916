/* sumo_test.go
 * Contains unit tests for sumo.go
 */

package external

import (
	"net/url"
	"testing"

	"sumo-data/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region URL tests

func TestTorikumiURL(t *testing.T) {
	u, err := url.Parse(TorikumiURL(7))

	require.NoError(t, err)
	assert.Equal(t, "www.sumo.or.jp", u.Host)
	assert.Equal(t, "/En/hon_basho_torikumi/index/1/", u.Path)
	assert.Equal(t, "7", u.Query().Get("day"))
}

func TestTorikumiURL_ClampsDay(t *testing.T) {
	assert.Equal(t, TorikumiURL(1), TorikumiURL(0))
	assert.Equal(t, TorikumiURL(15), TorikumiURL(40))
}

func TestRikishiSearchURL_Escapes(t *testing.T) {
	u, err := url.Parse(RikishiSearchURL(" Ura & Abi "))

	require.NoError(t, err)
	assert.Equal(t, "Ura & Abi", u.Query().Get("shikona"))
	assert.NotContains(t, u.RawQuery, " ")
}

// endregion

// region asset tests

func TestFlagAsset(t *testing.T) {
	assert.Equal(t, "assets/images/japan-flag.png", FlagAsset("Japan"))
	assert.Equal(t, "assets/images/mongolia-flag.png", FlagAsset("Mongolia"))
	assert.Equal(t, "assets/images/mongolia-flag.png", FlagAsset(" mongolia"))
	assert.Equal(t, "assets/images/japan-flag.png", FlagAsset(""))
}

func TestPhotoAsset(t *testing.T) {
	assert.Equal(t, "assets/images/east-placeholder.png", PhotoAsset(shared.East))
	assert.Equal(t, "assets/images/west-placeholder.png", PhotoAsset(shared.West))
}

// endregion
