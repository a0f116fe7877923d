package infrastructure

import (
	"context"
	"sync"

	"github.com/Agurato/filmstore/internal/model"
)

// FilmMemory keeps films in memory. It behaves like FilmMapper without any database.
type FilmMemory struct {
	mu     sync.Mutex
	films  map[int64]model.Film
	order  []int64
	lastID int64
}

// NewFilmMemory creates an empty FilmMemory
func NewFilmMemory() *FilmMemory {
	return &FilmMemory{
		films: make(map[int64]model.Film),
	}
}

// Ping always succeeds
func (fm *FilmMemory) Ping(context.Context) error {
	return nil
}

// FindByID fetches a film from its ID
func (fm *FilmMemory) FindByID(_ context.Context, id int64) (*model.Film, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	film, ok := fm.films[id]
	if !ok {
		return nil, model.ErrFilmNotFound
	}
	return &film, nil
}

// FindAll returns every film in insertion order
func (fm *FilmMemory) FindAll(context.Context) ([]model.Film, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	films := make([]model.Film, 0, len(fm.films))
	for _, id := range fm.order {
		if film, ok := fm.films[id]; ok {
			films = append(films, film)
		}
	}
	return films, nil
}

// Save stores the film under the next ID
func (fm *FilmMemory) Save(_ context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Transient); err != nil {
		return err
	}
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.lastID++
	film.ID = fm.lastID
	fm.films[film.ID] = *film
	fm.order = append(fm.order, film.ID)
	return nil
}

// Update overwrites the stored film if it exists
func (fm *FilmMemory) Update(_ context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Persisted); err != nil {
		return err
	}
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if _, ok := fm.films[film.ID]; ok {
		fm.films[film.ID] = *film
	}
	return nil
}

// Delete forgets the film
func (fm *FilmMemory) Delete(_ context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Persisted); err != nil {
		return err
	}
	fm.mu.Lock()
	defer fm.mu.Unlock()
	delete(fm.films, film.ID)
	return nil
}
