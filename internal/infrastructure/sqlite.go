package infrastructure

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
)

const filmsSchema = `CREATE TABLE IF NOT EXISTS films (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	year INTEGER,
	duration INTEGER
)`

// NewSQLite opens the SQLite database at path and makes sure the films table exists
func NewSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapError("open", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, wrapError("ping", err)
	}
	if _, err := db.ExecContext(ctx, filmsSchema); err != nil {
		db.Close()
		return nil, wrapError("create films table", err)
	}
	log.Info().Str("path", path).Msg("Using SQLite database")

	return db, nil
}
