/* session_interface.go
 * Contains the subset of the Discord session the bot uses, so handlers can run against a mock
 */

package bot

import "github.com/bwmarrin/discordgo"

// DiscordSession is the part of *discordgo.Session the handlers need
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Ensure *discordgo.Session implements DiscordSession
var _ DiscordSession = (*discordgo.Session)(nil)
