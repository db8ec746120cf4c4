package config

import (
	"os"
	"strconv"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain"
)

type Config struct {
	SlackBotToken         string
	SlackSigningSecret    string
	AnnouncementChannelID string
	DatabasePath          string
	Port                  string
	SchedulerInterval     time.Duration
	LookaheadWindow       time.Duration
	UrgentThreshold       time.Duration
	RetentionPeriod       time.Duration
	SideChannelsEnabled   bool
}

func Load() *Config {
	return &Config{
		SlackBotToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:    getEnv("SLACK_SIGNING_SECRET", ""),
		AnnouncementChannelID: getEnv("ANNOUNCEMENT_CHANNEL_ID", ""),
		DatabasePath:          getEnv("DATABASE_PATH", "./meetbot.db"),
		Port:                  getEnv("PORT", "3000"),
		SchedulerInterval:     getDurationEnv("SCHEDULER_INTERVAL", domain.DefaultSchedulerInterval),
		LookaheadWindow:       getDurationEnv("LOOKAHEAD_WINDOW", domain.DefaultLookaheadWindow),
		UrgentThreshold:       getDurationEnv("URGENT_THRESHOLD", domain.DefaultUrgentThreshold),
		RetentionPeriod:       getDurationEnv("RETENTION_PERIOD", domain.DefaultRetentionPeriod),
		SideChannelsEnabled:   getBoolEnv("SIDE_CHANNELS_ENABLED", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
