package contract

import (
	"context"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Meeting() MeetingRepo
}

// MeetingRepo defines the contract for the meeting repository.
// Not-found reads return (nil, nil); mutations are single-record updates that
// rely on the store's per-record atomicity.
type MeetingRepo interface {
	Create(meeting *entity.Meeting) error
	GetByID(id int64) (*entity.Meeting, error)
	GetByParticipant(label string) ([]*entity.Meeting, error)
	GetDueWithin(now time.Time, lookahead time.Duration) ([]*entity.Meeting, error)
	GetStale(now time.Time, retention time.Duration) ([]*entity.Meeting, error)
	SetNotificationState(id int64, state entity.NotificationState) error
	SetScheduledAt(id int64, scheduledAt time.Time) error
	SetSideChannel(id int64, channelID string) error
	Delete(id int64) (bool, error)
}
