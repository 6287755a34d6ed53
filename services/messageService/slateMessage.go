package messageService

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cfbPickem/models"
	"cfbPickem/services/common"
	"cfbPickem/services/gameService"

	"github.com/bwmarrin/discordgo"
)

// Discord rejects embeds with more than 25 fields.
const maxEmbedFields = 25

const (
	slateColor = 0x3498db
	linesColor = 0xF1C40F
)

func teamName(teams *gameService.TeamIndex, id string) string {
	if ref, found := teams.ByID(id); found {
		return ref.Team.Name
	}
	return id
}

// SpreadLabel renders a game's line as "Georgia -7.5".
func SpreadLabel(game models.Game, teams *gameService.TeamIndex) string {
	return fmt.Sprintf("%s %s", teamName(teams, game.SpreadTeamID), common.FormatSpread(game.Spread))
}

func kickoffLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon Jan 2 03:04 pm MST")
}

// BuildSlateEmbeds renders a week's games, earliest kickoff first. Large
// slates are split across several embeds.
func BuildSlateEmbeds(week models.Week, games []models.Game, teams *gameService.TeamIndex, loc *time.Location) []*discordgo.MessageEmbed {
	sorted := append([]models.Game(nil), games...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].KickoffUtc.Before(sorted[j].KickoffUtc)
	})

	var fields []*discordgo.MessageEmbedField
	for _, g := range sorted {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("🏈 %s @ %s", teamName(teams, g.AwayTeamID), teamName(teams, g.HomeTeamID)),
			Value: fmt.Sprintf("Line: **%s**\nKickoff: %s", SpreadLabel(g, teams), kickoffLabel(g.KickoffUtc, loc)),
		})
	}

	description := fmt.Sprintf("Picks open %s and close %s",
		kickoffLabel(week.PicksOpenUtc, loc), kickoffLabel(week.PicksCloseUtc, loc))
	if len(fields) == 0 {
		return []*discordgo.MessageEmbed{{
			Title:       fmt.Sprintf("📋 %s Slate (%s)", week.Description, week.Season),
			Description: description + "\n_No games selected yet_",
			Color:       slateColor,
		}}
	}

	var embeds []*discordgo.MessageEmbed
	for start := 0; start < len(fields); start += maxEmbedFields {
		end := start + maxEmbedFields
		if end > len(fields) {
			end = len(fields)
		}
		title := fmt.Sprintf("📋 %s Slate (%s)", week.Description, week.Season)
		if start > 0 {
			title += " (cont.)"
		}
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       title,
			Description: description,
			Fields:      fields[start:end],
			Color:       slateColor,
		})
	}
	return embeds
}

// BuildLineChangeEmbed lists the spreads that moved in one week.
func BuildLineChangeEmbed(changes gameService.WeekLineChanges, teams *gameService.TeamIndex, now time.Time, loc *time.Location) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, c := range changes.Changes {
		old := c.Game
		old.Spread = c.OldSpread
		old.SpreadTeamID = c.OldSpreadTeamID
		fmt.Fprintf(&b, "%s @ %s: ~~%s~~ → **%s**\n",
			teamName(teams, c.Game.AwayTeamID), teamName(teams, c.Game.HomeTeamID),
			SpreadLabel(old, teams), SpreadLabel(c.Game, teams))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📢 Lines Updated %s", now.In(loc).Format("Mon 03:04 pm MST")),
		Description: fmt.Sprintf("%s (%s)", changes.Week.Description, changes.Week.Season),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Moves",
				Value: b.String(),
			},
		},
		Color: linesColor,
	}
}
