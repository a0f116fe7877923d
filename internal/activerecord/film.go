// Package activerecord exposes films that know how to load and persist themselves.
//
// An active Film carries the repository it was bound to, so callers write
//
//	films := activerecord.NewFilms(repo, model.SystemClock)
//	film := films.New("Inception", 2010, 148)
//	err := film.Save(ctx)
//
// instead of handing the film to a mapper. The persistence itself is the one of the
// underlying business.FilmRepository.
package activerecord

import (
	"context"

	"github.com/samber/lo"

	"github.com/Agurato/filmstore/internal/business"
	"github.com/Agurato/filmstore/internal/model"
)

// Films creates and finds active films bound to a repository
type Films struct {
	repo  business.FilmRepository
	clock model.Clock
}

// NewFilms binds active films to a repository and a clock
func NewFilms(repo business.FilmRepository, clock model.Clock) *Films {
	if clock == nil {
		clock = model.SystemClock
	}
	return &Films{
		repo:  repo,
		clock: clock,
	}
}

// Film is a film with persistence methods attached
type Film struct {
	model.Film
	films *Films
}

// New creates a transient film
func (fs *Films) New(title string, year, duration int) *Film {
	return fs.bind(*model.NewFilm(title, year, duration))
}

// Find loads a film from its ID, or returns model.ErrFilmNotFound
func (fs *Films) Find(ctx context.Context, id int64) (*Film, error) {
	film, err := fs.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return fs.bind(*film), nil
}

// All loads every film
func (fs *Films) All(ctx context.Context) ([]*Film, error) {
	films, err := fs.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(films, func(film model.Film, _ int) *Film {
		return fs.bind(film)
	}), nil
}

func (fs *Films) bind(film model.Film) *Film {
	return &Film{
		Film:  film,
		films: fs,
	}
}

// Save inserts the film and sets its ID
func (f *Film) Save(ctx context.Context) error {
	return f.films.repo.Save(ctx, &f.Film)
}

// Update writes the current fields of the film
func (f *Film) Update(ctx context.Context) error {
	return f.films.repo.Update(ctx, &f.Film)
}

// Delete removes the film from the storage
func (f *Film) Delete(ctx context.Context) error {
	return f.films.repo.Delete(ctx, &f.Film)
}

// Age returns the film age at the current year of the bound clock
func (f *Film) Age() int {
	return f.Film.Age(f.films.clock())
}
