package entity

import (
	"fmt"
	"strings"
	"time"
)

// NotificationState is the furthest reminder tier already sent for a meeting.
// It only moves forward (NONE -> HOUR -> MINUTE, or NONE -> MINUTE directly);
// the single exception is a reschedule, which resets it to NONE.
type NotificationState int

const (
	NotificationNone NotificationState = iota
	NotificationHour
	NotificationMinute
)

func (s NotificationState) String() string {
	switch s {
	case NotificationNone:
		return "none"
	case NotificationHour:
		return "hour"
	case NotificationMinute:
		return "minute"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Valid reports whether the state is one of the known tiers.
func (s NotificationState) Valid() bool {
	return s >= NotificationNone && s <= NotificationMinute
}

type Meeting struct {
	ID            int64             `json:"id" db:"id"`
	Description   string            `json:"description" db:"description"`
	ScheduledAt   time.Time         `json:"scheduled_at" db:"scheduled_at"` // always UTC
	Participants  []string          `json:"participants" db:"participants"` // Slack user (U...) or user group (S...) IDs
	Notification  NotificationState `json:"notification_state" db:"notification_state"`
	SideChannelID string            `json:"side_channel_id,omitempty" db:"side_channel_id"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// Mentions renders the participant list as Slack mention markup.
func (m *Meeting) Mentions() string {
	mentions := make([]string, 0, len(m.Participants))
	for _, p := range m.Participants {
		if strings.HasPrefix(p, "S") {
			mentions = append(mentions, fmt.Sprintf("<!subteam^%s>", p))
			continue
		}
		mentions = append(mentions, fmt.Sprintf("<@%s>", p))
	}
	return strings.Join(mentions, " ")
}
