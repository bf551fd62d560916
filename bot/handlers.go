/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sumo-data/api/api"
	"sumo-data/api/logic"
	"sumo-data/api/store"
	"sumo-data/app"
	"sumo-data/render"

	"github.com/bwmarrin/discordgo"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Sumo Data Bot v1.0\n")
	res.WriteString("`$details`: Get information about the tournament including name, location, dates, day and a link to the official schedule\n")
	res.WriteString("`$match [number]`: shows the current match (or match number), both rikishi and their head-to-head record\n")
	res.WriteString("`$next` / `$prev`: moves to the next or previous match of the day\n")
	res.WriteString("`$find shikona`: jumps to the match of a rikishi\n")
	res.WriteString("`$rikishi shikona [shikona...]`: shows the profiles of rikishi on today's schedule\n")
	res.WriteString("`$h2h`: shows the head-to-head record of the current match\n")
	res.WriteString("`$refresh`: reloads today's matches\n")
	res.WriteString("There is fuzzy matching on names, however you should try and have a close match for the best results. Names that contain two or more words need to be encased in \" (e.g. \"Ura Kazuki\")\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// detailsHandler handles the $details command with a DiscordSession interface
func (b *Bot) detailsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info := b.Controller.API().GetTournamentInfo()
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// matchHandler handles the $match command with a DiscordSession interface. "$match N" selects match N first
func (b *Bot) matchHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if args := commandArgs(message.Content); len(args) > 0 {
		number, err := strconv.Atoi(args[0])
		if err != nil || !b.Controller.Select(context.Background(), number-1) {
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("There is no match %s today", args[0]))
			return
		}
	}
	if _, err := b.Controller.Card(); err != nil {
		b.logger.WithError(err).Warn("no match to show")
		session.ChannelMessageSend(message.ChannelID, "No match data is available yet, try `$refresh`")
		return
	}
	session.ChannelMessageSend(message.ChannelID, render.Text(b.Controller.View()))
}

// nextHandler handles the $next command with a DiscordSession interface
func (b *Bot) nextHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if !b.Controller.Next(context.Background()) {
		session.ChannelMessageSend(message.ChannelID, "Already at the last match of the day")
		return
	}
	session.ChannelMessageSend(message.ChannelID, render.Text(b.Controller.View()))
}

// previousHandler handles the $prev command with a DiscordSession interface
func (b *Bot) previousHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if !b.Controller.Previous(context.Background()) {
		session.ChannelMessageSend(message.ChannelID, "Already at the first match of the day")
		return
	}
	session.ChannelMessageSend(message.ChannelID, render.Text(b.Controller.View()))
}

// findHandler handles the $find command with a DiscordSession interface
func (b *Bot) findHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$find shikona`")
		return
	}
	query := strings.Join(args, " ")

	if _, err := b.Controller.Jump(context.Background(), query); err != nil {
		session.ChannelMessageSend(message.ChannelID, lookupError(query, err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, render.Text(b.Controller.View()))
}

// rikishiHandler handles the $rikishi command with a DiscordSession interface
func (b *Bot) rikishiHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$rikishi shikona`")
		return
	}
	if len(args) > 1 {
		b.rikishiListHandler(session, message, args)
		return
	}

	profile, err := b.Controller.API().Rikishi(context.Background(), args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, lookupError(args[0], err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, profileText(profile))
}

// rikishiListHandler answers "$rikishi a b c" with one profile per name and a line for the names not found
func (b *Bot) rikishiListHandler(session DiscordSession, message *discordgo.MessageCreate, names []string) {
	profiles, invalid, err := b.Controller.API().RikishiProfiles(context.Background(), names)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, lookupError(strings.Join(names, " "), err))
		return
	}

	var res strings.Builder
	for _, profile := range profiles {
		res.WriteString(profileText(profile))
	}
	if len(invalid) > 0 {
		for i := range invalid {
			invalid[i] = logic.NormaliseQuery(invalid[i])
		}
		res.WriteString(fmt.Sprintf("Not on today's schedule: %s\n", strings.Join(invalid, ", ")))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// headToHeadHandler handles the $h2h command with a DiscordSession interface
func (b *Bot) headToHeadHandler(session DiscordSession, message *discordgo.MessageCreate) {
	card, err := b.Controller.Card()
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "No match data is available yet, try `$refresh`")
		return
	}
	east, west := card.Match.East, card.Match.West

	h2h, err := b.Controller.API().HeadToHead(context.Background(), east.ID, west.ID)
	if err != nil {
		b.logger.WithError(err).Warn("head-to-head unavailable")
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Head-to-head: %s", render.NoHeadToHead))
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Head-to-head: %s %d - %d %s", east.Shikona, h2h.EastWins, h2h.WestWins, west.Shikona))
}

// refreshHandler handles the $refresh command with a DiscordSession interface
func (b *Bot) refreshHandler(session DiscordSession, message *discordgo.MessageCreate) {
	err := b.Controller.ManualRefresh(context.Background())
	switch {
	case errors.Is(err, app.ErrRefreshThrottled):
		session.ChannelMessageSend(message.ChannelID, "Matches were refreshed moments ago, try again shortly")
	case err != nil:
		b.logger.WithError(err).Error("manual refresh failed")
		session.ChannelMessageSend(message.ChannelID, "An error occured refreshing the matches")
	default:
		status := b.Controller.Status()
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Matches refreshed: %d matches, last updated %s", status.MatchCount, status.LastUpdated.Format(render.TimestampLayout)))
	}
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case isCommand(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case isCommand(message.Content, "$details"):
		b.detailsHandler(session, message)

	case isCommand(message.Content, "$match"):
		b.matchHandler(session, message)

	case isCommand(message.Content, "$next"):
		b.nextHandler(session, message)

	case isCommand(message.Content, "$prev"):
		b.previousHandler(session, message)

	case isCommand(message.Content, "$find"):
		b.findHandler(session, message)

	case isCommand(message.Content, "$rikishi"):
		b.rikishiHandler(session, message)

	case isCommand(message.Content, "$h2h"):
		b.headToHeadHandler(session, message)

	case isCommand(message.Content, "$refresh"):
		b.refreshHandler(session, message)
	}
}

func lookupError(query string, err error) string {
	if errors.Is(err, api.ErrNoSuchRikishi) {
		return fmt.Sprintf("No rikishi on today's schedule matches '%s'", logic.NormaliseQuery(query))
	}
	if errors.Is(err, api.ErrNoMatches) {
		return "No match data is available yet, try `$refresh`"
	}
	return "An unexpected error occured"
}

func profileText(p *store.RikishiProfile) string {
	var res strings.Builder
	res.WriteString(fmt.Sprintf("**%s** (%s)\n", p.Shikona, p.Rank))
	res.WriteString(fmt.Sprintf("- Heya: %s\n", p.Heya))
	res.WriteString(fmt.Sprintf("- From: %s, %s\n", p.Hometown, p.Country))
	res.WriteString(fmt.Sprintf("- Age: %d years\n", p.Age))
	res.WriteString(fmt.Sprintf("- Height: %d cm (%s)\n", p.HeightCM, p.HeightImperial))
	res.WriteString(fmt.Sprintf("- Weight: %d kg (%s)\n", p.WeightKG, p.WeightImperial))
	res.WriteString(fmt.Sprintf("- Highest rank: %s\n", p.HighestRank))
	res.WriteString(fmt.Sprintf("- Current record: %s\n", p.CurrentRecord))
	for _, basho := range p.PreviousBasho {
		res.WriteString(fmt.Sprintf("  - %s: %s %s\n", basho.Name, basho.Rank, basho.Record))
	}
	return res.String()
}
