package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/OfficialHisha/MeetBot/internal/config"
	"github.com/OfficialHisha/MeetBot/internal/database"
	"github.com/OfficialHisha/MeetBot/internal/domain/service"
	"github.com/OfficialHisha/MeetBot/internal/handlers"
	"github.com/OfficialHisha/MeetBot/migrator/sqlite"
	"github.com/jmhodges/clock"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg(".env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	logger.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	dm := database.NewInstance(db)
	slackClient := slack.New(cfg.SlackBotToken)
	clk := clock.New()

	services := service.NewInstance(dm, slackClient, clk, logger, service.Config{
		Interval:              cfg.SchedulerInterval,
		LookaheadWindow:       cfg.LookaheadWindow,
		UrgentThreshold:       cfg.UrgentThreshold,
		RetentionPeriod:       cfg.RetentionPeriod,
		SideChannelsEnabled:   cfg.SideChannelsEnabled,
		AnnouncementChannelID: cfg.AnnouncementChannelID,
	})

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Meeting, cfg.SlackSigningSecret, clk)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
