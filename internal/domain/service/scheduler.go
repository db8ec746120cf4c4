package service

import (
	"fmt"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/contract"
	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
	"github.com/jmhodges/clock"
	"github.com/rs/zerolog"
)

// scheduler is the periodic reconciliation loop: each wake it sweeps stale
// meetings, scans the due window and advances every meeting through the
// notification tiers, handing minute-tier meetings to the timer manager.
type scheduler struct {
	dm     contract.DataManager
	sink   contract.AnnouncementSink
	timers *timerManager
	clk    clock.Clock
	log    zerolog.Logger
	engine engine

	interval     time.Duration
	lookahead    time.Duration
	retention    time.Duration
	sideChannels bool

	stopChan chan struct{}
	running  bool
}

func newScheduler(dm contract.DataManager, sink contract.AnnouncementSink, timers *timerManager, clk clock.Clock, log zerolog.Logger, cfg Config) *scheduler {
	return &scheduler{
		dm:           dm,
		sink:         sink,
		timers:       timers,
		clk:          clk,
		log:          log,
		engine:       newEngine(cfg.LookaheadWindow, cfg.UrgentThreshold),
		interval:     cfg.Interval,
		lookahead:    cfg.LookaheadWindow,
		retention:    cfg.RetentionPeriod,
		sideChannels: cfg.SideChannelsEnabled,
		stopChan:     make(chan struct{}),
	}
}

// Start runs the recovery pass for timers lost across a restart, then kicks
// off the reconciliation loop.
func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info().Dur("interval", s.interval).Msg("scheduler starting")

	s.recoverInFlight()
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info().Msg("scheduler stopping")
	close(s.stopChan)
	s.running = false
	s.timers.Stop()
}

func (s *scheduler) mainLoop() {
	for {
		select {
		case <-s.clk.After(s.interval):
			s.runCycle()
		case <-s.stopChan:
			return
		}
	}
}

func (s *scheduler) runCycle() {
	now := s.clk.Now().UTC()

	s.sweepStale(now)

	meetings, err := s.dm.Meeting().GetDueWithin(now, s.lookahead)
	if err != nil {
		// Store unreachable: back off until the next wake, decisions are
		// re-derived from persisted state then.
		s.log.Error().Err(err).Msg("failed to query due meetings")
		return
	}

	for _, meeting := range meetings {
		s.processMeeting(meeting, now)
	}
}

func (s *scheduler) processMeeting(meeting *entity.Meeting, now time.Time) {
	if !meeting.Notification.Valid() {
		s.log.Error().
			Int64("meeting_id", meeting.ID).
			Int("notification_state", int(meeting.Notification)).
			Msg("unrecognized notification state, skipping meeting this cycle")
		return
	}

	switch s.engine.decide(meeting, now) {
	case actionNotifyHour:
		s.notify(meeting, entity.NotificationHour, now)
	case actionNotifyMinute:
		s.notify(meeting, entity.NotificationMinute, now)
	}
}

// notify persists the new tier before announcing, so a failed announcement is
// never re-sent: the advanced state is what the next cycle re-derives its
// decision from.
func (s *scheduler) notify(meeting *entity.Meeting, state entity.NotificationState, now time.Time) {
	if err := s.dm.Meeting().SetNotificationState(meeting.ID, state); err != nil {
		s.log.Error().Err(err).Int64("meeting_id", meeting.ID).Msg("failed to persist notification state")
		return
	}
	meeting.Notification = state

	text := fmt.Sprintf("Meeting '%s' for %s starts in %d minutes",
		meeting.Description, meeting.Mentions(), minutesRemaining(meeting, now))
	if err := s.sink.Announce(text); err != nil {
		s.log.Error().Err(err).
			Int64("meeting_id", meeting.ID).
			Str("state", state.String()).
			Msg("failed to announce reminder")
	}

	if state != entity.NotificationMinute {
		return
	}

	if s.sideChannels && meeting.SideChannelID == "" {
		s.provisionSideChannel(meeting)
	}

	s.timers.Schedule(meeting, meeting.ScheduledAt.Sub(now))
}

func (s *scheduler) provisionSideChannel(meeting *entity.Meeting) {
	channelID, err := s.sink.ProvisionSideChannel(meeting)
	if err != nil {
		s.log.Error().Err(err).Int64("meeting_id", meeting.ID).Msg("failed to provision side channel")
		return
	}

	if err := s.dm.Meeting().SetSideChannel(meeting.ID, channelID); err != nil {
		s.log.Error().Err(err).Int64("meeting_id", meeting.ID).Msg("failed to persist side channel handle")
		// The record must never point at a resource we cannot track; tear the
		// channel back down rather than leak it.
		if destroyErr := s.sink.DestroySideChannel(channelID); destroyErr != nil {
			s.log.Error().Err(destroyErr).Str("side_channel_id", channelID).Msg("failed to destroy orphaned side channel")
		}
		return
	}

	meeting.SideChannelID = channelID
	s.log.Info().Int64("meeting_id", meeting.ID).Str("side_channel_id", channelID).Msg("side channel provisioned")
}

// sweepStale reclaims meetings whose timer path never completed, for example
// across a restart that lost an armed countdown.
func (s *scheduler) sweepStale(now time.Time) {
	stale, err := s.dm.Meeting().GetStale(now, s.retention)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to query stale meetings")
		return
	}

	for _, meeting := range stale {
		deleted, err := s.dm.Meeting().Delete(meeting.ID)
		if err != nil {
			s.log.Error().Err(err).Int64("meeting_id", meeting.ID).Msg("failed to delete stale meeting")
			continue
		}
		if !deleted {
			continue
		}

		if meeting.SideChannelID != "" {
			if err := s.sink.DestroySideChannel(meeting.SideChannelID); err != nil {
				s.log.Error().Err(err).
					Int64("meeting_id", meeting.ID).
					Str("side_channel_id", meeting.SideChannelID).
					Msg("failed to destroy side channel of stale meeting")
			}
		}

		s.log.Info().
			Int64("meeting_id", meeting.ID).
			Time("scheduled_at", meeting.ScheduledAt).
			Msg("stale meeting swept")
	}
}

// recoverInFlight is the eager startup pass: meetings inside the urgent
// window that never reached the minute tier are promoted now, and meetings
// already at the minute tier get their countdown re-armed with the remaining
// time recomputed from the current clock, never from a stored value.
func (s *scheduler) recoverInFlight() {
	now := s.clk.Now().UTC()

	meetings, err := s.dm.Meeting().GetDueWithin(now, s.engine.urgentWindow)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to query meetings for recovery")
		return
	}

	for _, meeting := range meetings {
		if meeting.Notification == entity.NotificationMinute {
			s.timers.Schedule(meeting, meeting.ScheduledAt.Sub(now))
			continue
		}
		if !meeting.Notification.Valid() {
			s.log.Error().
				Int64("meeting_id", meeting.ID).
				Int("notification_state", int(meeting.Notification)).
				Msg("unrecognized notification state, skipping recovery")
			continue
		}
		s.notify(meeting, entity.NotificationMinute, now)
	}
}
