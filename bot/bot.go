/* bot.go
 * Contains the Bot struct and its constructor. Requires a discord bot token and the app controller, both of which
 * are passed in from main.go
 */

package bot

import (
	"fmt"
	"strings"

	"sumo-data/app"

	"github.com/go-andiamo/splitter"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	BotToken   string
	Controller *app.Controller
	logger     *logrus.Logger
}

// NewBot creates a Bot. A nil logger uses the logrus standard logger
func NewBot(botToken string, controller *app.Controller, logger *logrus.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if controller == nil {
		return nil, fmt.Errorf("controller is required but none was provided")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Bot{
		BotToken:   botToken,
		Controller: controller,
		logger:     logger,
	}, nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}

// isCommand reports whether content is the command, alone or followed by arguments, so "$matches" is not "$match"
func isCommand(content string, command string) bool {
	if !startsWith(content, command) {
		return false
	}
	rest := content[len(command):]
	return rest == "" || rest[0] == ' '
}

// commandArgs splits a command on spaces, keeping "quoted names" together, and drops the command itself
func commandArgs(content string) []string {
	// we use splitter here instead of strings.Fields so shikona in quotes are kept as one argument
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	parts, err := spaceSplitter.Split(content)
	if err != nil || len(parts) < 2 {
		return nil
	}

	var args []string
	for _, part := range parts[1:] {
		if part = strings.TrimSpace(part); part != "" {
			args = append(args, part)
		}
	}
	return args
}
