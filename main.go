package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dsartorelli/book-site-backend/api"
	"github.com/dsartorelli/book-site-backend/database"
	"github.com/dsartorelli/book-site-backend/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	var primary storage.Slot
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		gormLogger := logger.New(
			stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
			logger.Config{
				SlowThreshold:             10 * time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)

		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
			Logger:      gormLogger,
		})
		if err != nil {
			log.Error().Err(err).Msg("Error connecting to database, content will live in memory only")
		} else {
			primary, err = storage.NewPostgresSlot(db)
			if err != nil {
				log.Error().Err(err).Msg("Error preparing content storage, content will live in memory only")
				primary = nil
			}
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, content will live in memory only")
	}

	if primary == nil {
		primary = storage.NewMemorySlot()
	}

	slot := storage.NewFallbackSlot(primary, log.Logger)
	if !slot.Available() {
		log.Warn().Msg("Primary storage unavailable at startup, serving from memory fallback")
	}

	store := storage.NewStore(slot, log.Logger)
	currentDB := database.New(store)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
