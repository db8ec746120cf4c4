package contract

import (
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
)

// MeetingService is the command-facing surface for managing meetings.
type MeetingService interface {
	Setup(description string, scheduledAt time.Time, participants []string) (*entity.Meeting, error)
	Cancel(id int64) (bool, error)
	Reschedule(id int64, scheduledAt time.Time) (*entity.Meeting, error)
	ListByParticipant(label string) ([]*entity.Meeting, error)
}

// AnnouncementSink delivers reminder messages to the configured announcement
// channel and manages the optional per-meeting side channel. Announce does not
// retry; the scheduler's next cycle is the only retry mechanism.
type AnnouncementSink interface {
	Announce(text string) error
	ProvisionSideChannel(meeting *entity.Meeting) (string, error)
	DestroySideChannel(channelID string) error
}
