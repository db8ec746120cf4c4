package service

import (
	"fmt"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/contract"
	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
	"github.com/rs/zerolog"
)

// meetingService is the command-facing surface: setup, cancel, reschedule and
// listing. The scheduler never goes through it; both sides meet only at the
// store.
type meetingService struct {
	dm   contract.DataManager
	sink contract.AnnouncementSink
	log  zerolog.Logger
}

func newMeetingService(dm contract.DataManager, sink contract.AnnouncementSink, log zerolog.Logger) *meetingService {
	return &meetingService{
		dm:   dm,
		sink: sink,
		log:  log,
	}
}

func (s *meetingService) Setup(description string, scheduledAt time.Time, participants []string) (*entity.Meeting, error) {
	meeting := &entity.Meeting{
		Description:  description,
		ScheduledAt:  scheduledAt.UTC(),
		Participants: participants,
		Notification: entity.NotificationNone,
	}

	if err := s.dm.Meeting().Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.log.Info().
		Int64("meeting_id", meeting.ID).
		Time("scheduled_at", meeting.ScheduledAt).
		Msg("meeting created")

	return meeting, nil
}

// Cancel removes a meeting and its side channel. The record goes first so no
// meeting ever points at a destroyed channel. Returns false when no such
// meeting exists.
func (s *meetingService) Cancel(id int64) (bool, error) {
	meeting, err := s.dm.Meeting().GetByID(id)
	if err != nil {
		return false, fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting == nil {
		return false, nil
	}

	deleted, err := s.dm.Meeting().Delete(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete meeting: %w", err)
	}
	if !deleted {
		return false, nil
	}

	if meeting.SideChannelID != "" {
		if err := s.sink.DestroySideChannel(meeting.SideChannelID); err != nil {
			s.log.Error().Err(err).
				Int64("meeting_id", id).
				Str("side_channel_id", meeting.SideChannelID).
				Msg("failed to destroy side channel of cancelled meeting")
		}
	}

	s.log.Info().Int64("meeting_id", id).Msg("meeting cancelled")
	return true, nil
}

// Reschedule moves a meeting and resets its notification progress, so the
// scheduler derives fresh reminders for the new time. Returns nil when no
// such meeting exists.
func (s *meetingService) Reschedule(id int64, scheduledAt time.Time) (*entity.Meeting, error) {
	meeting, err := s.dm.Meeting().GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting == nil {
		return nil, nil
	}

	if err := s.dm.Meeting().SetScheduledAt(id, scheduledAt.UTC()); err != nil {
		return nil, fmt.Errorf("failed to reschedule meeting: %w", err)
	}

	meeting.ScheduledAt = scheduledAt.UTC()
	meeting.Notification = entity.NotificationNone

	s.log.Info().
		Int64("meeting_id", id).
		Time("scheduled_at", meeting.ScheduledAt).
		Msg("meeting rescheduled")

	return meeting, nil
}

func (s *meetingService) ListByParticipant(label string) ([]*entity.Meeting, error) {
	meetings, err := s.dm.Meeting().GetByParticipant(label)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	return meetings, nil
}
