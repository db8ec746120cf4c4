package service

import (
	"fmt"
	"strings"

	"github.com/OfficialHisha/MeetBot/internal/domain/contract"
	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// announcer implements contract.AnnouncementSink against a single configured
// announcement channel.
type announcer struct {
	client    contract.SlackClient
	channelID string
	log       zerolog.Logger
}

func newAnnouncer(client contract.SlackClient, channelID string, log zerolog.Logger) *announcer {
	return &announcer{
		client:    client,
		channelID: channelID,
		log:       log,
	}
}

func (a *announcer) Announce(text string) error {
	_, _, err := a.client.PostMessage(
		a.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to post announcement: %w", err)
	}

	return nil
}

// ProvisionSideChannel creates the ephemeral channel for a meeting and
// invites its participants. A failed invite is logged but does not fail the
// provisioning: the channel exists and the announcement channel still carries
// the reminders.
func (a *announcer) ProvisionSideChannel(meeting *entity.Meeting) (string, error) {
	channel, err := a.client.CreateConversation(slack.CreateConversationParams{
		ChannelName: fmt.Sprintf("meeting-%d", meeting.ID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create side channel: %w", err)
	}

	// User groups cannot be invited directly, only individual users.
	var users []string
	for _, p := range meeting.Participants {
		if strings.HasPrefix(p, "U") {
			users = append(users, p)
		}
	}

	if len(users) > 0 {
		if _, err := a.client.InviteUsersToConversation(channel.ID, users...); err != nil {
			a.log.Error().Err(err).
				Int64("meeting_id", meeting.ID).
				Str("side_channel_id", channel.ID).
				Msg("failed to invite participants to side channel")
		}
	}

	return channel.ID, nil
}

func (a *announcer) DestroySideChannel(channelID string) error {
	if err := a.client.ArchiveConversation(channelID); err != nil {
		return fmt.Errorf("failed to archive side channel: %w", err)
	}

	return nil
}
