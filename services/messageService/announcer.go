package messageService

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// Announcer posts embeds to the league channel.
type Announcer interface {
	Send(ctx context.Context, embeds ...*discordgo.MessageEmbed) error
	Enabled() bool
}

// EmbedSender is the discordgo call the announcer makes.
type EmbedSender interface {
	ChannelMessageSendEmbeds(channelID string, embeds []*discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordAnnouncer struct {
	sender    EmbedSender
	channelID string
}

// NewDiscordAnnouncer builds an announcer from a bot token. It returns a
// no-op announcer when either the token or the channel is missing.
func NewDiscordAnnouncer(token, channelID string) (Announcer, error) {
	if token == "" || channelID == "" {
		log.Println("Discord announcements disabled")
		return NoopAnnouncer{}, nil
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return &DiscordAnnouncer{sender: s, channelID: channelID}, nil
}

func NewAnnouncerWithSender(sender EmbedSender, channelID string) *DiscordAnnouncer {
	return &DiscordAnnouncer{sender: sender, channelID: channelID}
}

func (a *DiscordAnnouncer) Enabled() bool {
	return true
}

// Send posts at most ten embeds per message, which is Discord's limit.
func (a *DiscordAnnouncer) Send(ctx context.Context, embeds ...*discordgo.MessageEmbed) error {
	for start := 0; start < len(embeds); start += 10 {
		end := start + 10
		if end > len(embeds) {
			end = len(embeds)
		}
		if _, err := a.sender.ChannelMessageSendEmbeds(a.channelID, embeds[start:end], discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("error sending to channel %s: %w", a.channelID, err)
		}
	}
	return nil
}

type NoopAnnouncer struct{}

func (NoopAnnouncer) Enabled() bool {
	return false
}

func (NoopAnnouncer) Send(context.Context, ...*discordgo.MessageEmbed) error {
	return nil
}
