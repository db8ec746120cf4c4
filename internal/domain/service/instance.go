package service

import (
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/contract"
	"github.com/jmhodges/clock"
	"github.com/rs/zerolog"
)

// Config carries the scheduling knobs consumed by the services.
type Config struct {
	Interval              time.Duration
	LookaheadWindow       time.Duration
	UrgentThreshold       time.Duration
	RetentionPeriod       time.Duration
	SideChannelsEnabled   bool
	AnnouncementChannelID string
}

type Instance struct {
	Meeting   contract.MeetingService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, clk clock.Clock, log zerolog.Logger, cfg Config) *Instance {
	sink := newAnnouncer(slackClient, cfg.AnnouncementChannelID, log)
	timers := newTimerManager(dm, sink, clk, log)

	return &Instance{
		Meeting:   newMeetingService(dm, sink, log),
		Scheduler: newScheduler(dm, sink, timers, clk, log, cfg),
	}
}
