/* bot_test.go
 * Contains unit tests for the helpers in bot.go
 */

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region startsWith and isCommand tests

func TestStartsWith(t *testing.T) {
	assert.True(t, startsWith("$find Abi", "$find"))
	assert.False(t, startsWith("find $find", "$find"))
	assert.False(t, startsWith("", "$help"))
}

func TestIsCommand(t *testing.T) {
	tests := []struct {
		content string
		command string
		want    bool
	}{
		{"$match", "$match", true},
		{"$match 3", "$match", true},
		{"$matches", "$match", false},
		{"$h2h", "$h2h", true},
		{"$helpme", "$help", false},
		{"$prev", "$previous", false},
		{" $next", "$next", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isCommand(tt.content, tt.command), "%q vs %q", tt.content, tt.command)
	}
}

// region commandArgs tests

func TestCommandArgs_QuotedName(t *testing.T) {
	args := commandArgs(`$find "Ura Kazuki"`)
	require.Len(t, args, 1)
	assert.Equal(t, `"Ura Kazuki"`, args[0])
}

func TestCommandArgs_SingleWord(t *testing.T) {
	assert.Equal(t, []string{"Hoshoryu"}, commandArgs("$rikishi   Hoshoryu "))
}

func TestCommandArgs_NoArguments(t *testing.T) {
	assert.Empty(t, commandArgs("$find"))
}

func TestCommandArgs_UnterminatedQuote(t *testing.T) {
	assert.Empty(t, commandArgs(`$find "Ura`))
}

// region NewBot tests

func TestNewBot_RequiresToken(t *testing.T) {
	_, err := NewBot("", nil, nil)
	assert.ErrorContains(t, err, "botToken")
}

func TestNewBot_RequiresController(t *testing.T) {
	_, err := NewBot("token", nil, nil)
	assert.ErrorContains(t, err, "controller")
}
