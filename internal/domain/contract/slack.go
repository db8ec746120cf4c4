package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// CreateConversation creates a new channel, used for meeting side channels
	CreateConversation(params slack.CreateConversationParams) (*slack.Channel, error)

	// InviteUsersToConversation invites the meeting participants to a side channel
	InviteUsersToConversation(channelID string, users ...string) (*slack.Channel, error)

	// ArchiveConversation archives a side channel once its meeting is retired
	ArchiveConversation(channelID string) error
}
