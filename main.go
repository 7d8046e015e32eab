package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/balance"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			Personal Finance Tracker API
// @description	The backend for the personal finance tracker
// @contact.url	https://github.com/GustaPeruci/PersonalFinanceTracker
// @license.name	MIT
// @license.url	https://github.com/GustaPeruci/PersonalFinanceTracker/blob/main/LICENSE
func main() {
	// Load a .env file for local development. In production, configuration
	// is passed as real environment variables.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg("environment variable API_URL must be a valid URL")
	}

	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		// Create the data directory for the default database location
		dataDir := filepath.Join(".", "data")
		err := os.MkdirAll(dataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		dsn = filepath.Join(dataDir, "finance.db")
	}

	// Connect to the database
	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Recompute the monthly balance cache on a schedule so that the
	// dashboard reads stay fresh without a manual refresh.
	schedule, ok := os.LookupEnv("BALANCE_REFRESH_SCHEDULE")
	if !ok {
		schedule = "@midnight"
	}

	scheduler := cron.New()
	_, err = scheduler.AddFunc(schedule, func() {
		year := time.Now().UTC().Year()
		err := balance.RefreshYear(models.LocalUser, year)
		if err != nil {
			log.Error().Err(err).Int("year", year).Msg("monthly balance refresh failed")
			return
		}
		log.Debug().Int("year", year).Msg("monthly balance refresh complete")
	})
	if err != nil {
		log.Fatal().Msgf("BALANCE_REFRESH_SCHEDULE is not a valid cron schedule: %s", err.Error())
	}
	scheduler.Start()
	defer scheduler.Stop()

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
