package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/filmstore/internal/business"
	"github.com/Agurato/filmstore/internal/infrastructure"
	"github.com/Agurato/filmstore/internal/model"
	"github.com/Agurato/filmstore/internal/service/server"
)

// Environment variables names
const (
	EnvDBDriver   = "DB_DRIVER" // "sqlite" or "mongodb"
	EnvSQLitePath = "SQLITE_PATH"
	EnvDBURL      = "DB_URL"
	EnvDBPort     = "DB_PORT"
	EnvDBName     = "DB_NAME"
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvListenAddr = "LISTEN_ADDR"
	EnvGinMode    = "GIN_MODE"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogPretty  = "LOG_PRETTY"
)

func main() {
	godotenv.Load()
	setupLogger()

	repo, closeRepo := openRepository()
	defer closeRepo()

	fm := business.NewFilmManager(repo, model.SystemClock)

	if mode := os.Getenv(EnvGinMode); mode != "" {
		gin.SetMode(mode)
	}
	srv := server.NewServer(server.NewFilmHandler(fm), fm)

	addr := getenv(EnvListenAddr, ":8080")
	log.Info().Str("addr", addr).Msg("Listening")
	if err := srv.Run(addr); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}

func setupLogger() {
	if os.Getenv(EnvLogPretty) == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		log.Logger = log.Output(os.Stdout)
	}
	level, err := zerolog.ParseLevel(getenv(EnvLogLevel, "info"))
	if err != nil {
		log.Warn().Err(err).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// openRepository connects to the configured storage and returns the film repository with its closer
func openRepository() (business.FilmRepository, func()) {
	switch driver := getenv(EnvDBDriver, "sqlite"); driver {
	case "sqlite":
		db, err := infrastructure.NewSQLite(getenv(EnvSQLitePath, "filmstore.db"))
		if err != nil {
			log.Fatal().Err(err).Msg("Could not open SQLite database")
		}
		return infrastructure.NewFilmMapper(db), func() { db.Close() }
	case "mongodb":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		uri := infrastructure.MongoURI(
			os.Getenv(EnvDBUser),
			os.Getenv(EnvDBPassword),
			getenv(EnvDBURL, "localhost"),
			getenv(EnvDBPort, "27017"))
		db, err := infrastructure.NewMongoDB(ctx, uri, getenv(EnvDBName, "filmstore"))
		if err != nil {
			log.Fatal().Err(err).Msg("Could not connect to MongoDB")
		}
		return db, func() { db.Close(context.Background()) }
	default:
		log.Fatal().Str("driver", driver).Msgf("%s must be 'sqlite' or 'mongodb'", EnvDBDriver)
	}
	return nil, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
