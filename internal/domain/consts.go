package domain

import "time"

// Scheduling defaults. The lookahead window bounds the due query and doubles
// as the hour-reminder threshold; the urgent threshold is the minute-reminder
// tier. Retention is how long a meeting whose timer never fired survives
// before the stale sweep reclaims it.
const (
	DefaultSchedulerInterval = 30 * time.Second
	DefaultLookaheadWindow   = 60 * time.Minute
	DefaultUrgentThreshold   = 10 * time.Minute
	DefaultRetentionPeriod   = 12 * time.Hour
)

// DefaultMeetingTitle is used when a setup command carries no quoted title.
const DefaultMeetingTitle = "meeting"
