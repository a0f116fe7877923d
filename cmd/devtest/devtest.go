package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/filmstore/internal/activerecord"
	"github.com/Agurato/filmstore/internal/infrastructure"
	"github.com/Agurato/filmstore/internal/model"
)

// Walks through the lifecycle of an active film on a throwaway SQLite database
func main() {
	godotenv.Load()
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "filmstore-devtest")
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create temporary directory")
	}
	defer os.RemoveAll(dir)

	db, err := infrastructure.NewSQLite(filepath.Join(dir, "films.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("Could not open SQLite database")
	}
	defer db.Close()

	films := activerecord.NewFilms(infrastructure.NewFilmMapper(db), model.SystemClock)

	film := films.New("Inception", 2010, 148)
	fmt.Println(film.State(), film.Title)
	if err := film.Save(ctx); err != nil {
		log.Fatal().Err(err).Msg("Could not save film")
	}
	fmt.Println(film.State(), film.ID, film.Title, film.Age(), "years old")

	film.Duration = 150
	if err := film.Update(ctx); err != nil {
		log.Fatal().Err(err).Msg("Could not update film")
	}
	found, err := films.Find(ctx, film.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not find film")
	}
	fmt.Println(found.ID, found.Title, found.Duration, "minutes")

	if err := found.Delete(ctx); err != nil {
		log.Fatal().Err(err).Msg("Could not delete film")
	}
	_, err = films.Find(ctx, film.ID)
	fmt.Println(errors.Is(err, model.ErrFilmNotFound), err)
}
