package business

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Agurato/filmstore/internal/model"
)

// FilmManager gives access to films through a FilmRepository, from user-provided identifiers
type FilmManager struct {
	FilmRepository
	clock model.Clock
}

// NewFilmManager instantiates a new FilmManager
func NewFilmManager(fr FilmRepository, clock model.Clock) *FilmManager {
	if clock == nil {
		clock = model.SystemClock
	}
	return &FilmManager{
		FilmRepository: fr,
		clock:          clock,
	}
}

// ParseFilmID parses a decimal film ID
func ParseFilmID(filmID string) (int64, error) {
	id, err := strconv.ParseInt(filmID, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: '%s'", model.ErrInvalidFilmID, filmID)
	}
	return id, nil
}

// GetFilm returns a Film from its ID
func (fm FilmManager) GetFilm(ctx context.Context, filmID string) (*model.Film, error) {
	id, err := ParseFilmID(filmID)
	if err != nil {
		return nil, err
	}
	film, err := fm.FilmRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get film from ID '%s': %w", filmID, err)
	}
	return film, nil
}

// GetFilms returns every film in the storage
func (fm FilmManager) GetFilms(ctx context.Context) ([]model.Film, error) {
	films, err := fm.FilmRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get films: %w", err)
	}
	return films, nil
}

// AddFilm creates and saves a new film
func (fm FilmManager) AddFilm(ctx context.Context, title string, year, duration int) (*model.Film, error) {
	film := model.NewFilm(title, year, duration)
	if err := fm.FilmRepository.Save(ctx, film); err != nil {
		return nil, fmt.Errorf("could not add film '%s': %w", title, err)
	}
	log.Info().Int64("film_id", film.ID).Str("title", film.Title).Msg("Film added")
	return film, nil
}

// EditFilm replaces the fields of an existing film
func (fm FilmManager) EditFilm(ctx context.Context, filmID, title string, year, duration int) (*model.Film, error) {
	film, err := fm.GetFilm(ctx, filmID)
	if err != nil {
		return nil, err
	}
	film.Title = title
	film.Year = year
	film.Duration = duration
	if err := fm.FilmRepository.Update(ctx, film); err != nil {
		return nil, fmt.Errorf("could not update film '%s': %w", filmID, err)
	}
	log.Info().Int64("film_id", film.ID).Str("title", film.Title).Msg("Film updated")
	return film, nil
}

// DeleteFilm removes an existing film
func (fm FilmManager) DeleteFilm(ctx context.Context, filmID string) error {
	film, err := fm.GetFilm(ctx, filmID)
	if err != nil {
		return err
	}
	if err := fm.FilmRepository.Delete(ctx, film); err != nil {
		return fmt.Errorf("could not delete film '%s': %w", filmID, err)
	}
	log.Info().Int64("film_id", film.ID).Str("title", film.Title).Msg("Film deleted")
	return nil
}

// FilmAge returns the age of the film at the manager's current time
func (fm FilmManager) FilmAge(film *model.Film) int {
	return film.Age(fm.clock())
}

// CheckStorage pings the repository when it supports it
func (fm FilmManager) CheckStorage(ctx context.Context) error {
	pinger, ok := fm.FilmRepository.(Pinger)
	if !ok {
		return nil
	}
	if err := pinger.Ping(ctx); err != nil {
		return fmt.Errorf("storage is unreachable: %w", err)
	}
	return nil
}

// IsNotFound tells if err comes from a missing film
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrFilmNotFound)
}
