// Package discord posts arcade notices to a Discord channel. It is a pure
// consumer of the event bus: subscribe on Start, render each notice as an
// embed with the raw payload attached, and fire it at the channel.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/n8cade/arcade/internal/domain/events"
)

// sender is the slice of discordgo.Session the announcer needs; tests
// substitute a recorder.
type sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Announcer struct {
	sess      sender
	channelID string
	log       zerolog.Logger
	cancels   []func()
}

func NewAnnouncer(sess *discordgo.Session, channelID string, log zerolog.Logger) *Announcer {
	return &Announcer{sess: sess, channelID: channelID, log: log}
}

func newAnnouncerWithSender(sess sender, channelID string, log zerolog.Logger) *Announcer {
	return &Announcer{sess: sess, channelID: channelID, log: log}
}

// Start subscribes to every notice type. Call Stop to unsubscribe.
func (a *Announcer) Start() {
	a.cancels = append(a.cancels,
		events.Subscribe(func(n events.QueueNotice) {
			a.post(fmt.Sprintf("🕹️ %s on game %s", n.Operation, short(n.GameID)), n)
		}),
		events.Subscribe(func(n events.GameNotice) {
			a.post(fmt.Sprintf("🏛️ %s game %s", n.Label, short(n.GameID)), n)
		}),
		events.Subscribe(func(n events.LeaderboardNotice) {
			a.post(fmt.Sprintf("🏆 %s entered the board on %s", n.PlayerName, short(n.GameID)), n)
		}),
	)
	a.log.Info().Str("channel", a.channelID).Msg("announcer started")
}

func (a *Announcer) Stop() {
	for _, c := range a.cancels {
		c()
	}
	a.cancels = nil
}

func (a *Announcer) post(title string, payload any) {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		a.log.Error().Err(err).Msg("announcer: marshal notice")
		return
	}
	emb := &discordgo.MessageEmbed{
		Title:       title,
		Description: "```json\n" + string(body) + "\n```",
	}
	if _, err := a.sess.ChannelMessageSendEmbed(a.channelID, emb); err != nil {
		a.log.Error().Err(err).Msg("announcer: send failed")
	}
}

// short trims a game key down to something readable in a message title.
func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
