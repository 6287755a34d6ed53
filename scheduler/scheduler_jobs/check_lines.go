package scheduler_jobs

import (
	"context"
	"fmt"
	"log"

	"cfbPickem/services/messageService"

	"github.com/bwmarrin/discordgo"
)

// CheckLines refreshes spreads for weeks still open for picks and announces
// the moves.
func CheckLines(ctx context.Context, d Deps) error {
	now := d.now()
	results, refreshErr := d.Lines.RefreshOpenWeeks(ctx, now)

	moved := 0
	for _, r := range results {
		moved += len(r.Changes)
	}
	log.Printf("line refresh: %d games moved in %d weeks", moved, len(results))

	if len(results) == 0 || d.Announcer == nil || !d.Announcer.Enabled() {
		return refreshErr
	}

	teams, err := d.teamIndex(ctx)
	if err != nil {
		return fmt.Errorf("error loading teams for announcement: %w", err)
	}
	var embeds []*discordgo.MessageEmbed
	for _, r := range results {
		embeds = append(embeds, messageService.BuildLineChangeEmbed(r, teams, now, d.location()))
	}
	if err := d.Announcer.Send(ctx, embeds...); err != nil {
		return err
	}
	return refreshErr
}
