package service

import (
	"math"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
)

type action int

const (
	actionNone action = iota
	actionNotifyHour
	actionNotifyMinute
)

// engine decides which reminder tier, if any, a meeting is due for. It is a
// pure function of (meeting, now); all mutation happens in the scheduler
// after the decision.
type engine struct {
	hourWindow   time.Duration
	urgentWindow time.Duration
}

func newEngine(hourWindow, urgentWindow time.Duration) engine {
	return engine{
		hourWindow:   hourWindow,
		urgentWindow: urgentWindow,
	}
}

// decide evaluates the threshold rules in order, first match wins. States
// never move backwards: a meeting already at the minute tier is owned by its
// countdown timer and gets no further decision here.
func (e engine) decide(meeting *entity.Meeting, now time.Time) action {
	remaining := meeting.ScheduledAt.Sub(now)

	switch meeting.Notification {
	case entity.NotificationNone:
		if remaining <= e.urgentWindow {
			return actionNotifyMinute
		}
		if remaining <= e.hourWindow {
			return actionNotifyHour
		}
	case entity.NotificationHour:
		if remaining <= e.urgentWindow {
			return actionNotifyMinute
		}
	}

	return actionNone
}

// minutesRemaining is display-only: ceil of the remaining seconds, clamped to
// zero. Threshold decisions use the raw durations above, never this rounded
// value.
func minutesRemaining(meeting *entity.Meeting, now time.Time) int {
	minutes := int(math.Ceil(meeting.ScheduledAt.Sub(now).Seconds() / 60))
	if minutes < 0 {
		return 0
	}
	return minutes
}
