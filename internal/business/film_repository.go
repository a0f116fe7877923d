package business

import (
	"context"

	"github.com/Agurato/filmstore/internal/model"
)

// FilmRepository is the persistence contract shared by the Data Mapper and Active Record front-ends
type FilmRepository interface {
	// FindByID returns model.ErrFilmNotFound when no film has this ID
	FindByID(ctx context.Context, id int64) (*model.Film, error)
	// FindAll returns every film, in whatever order the storage yields them
	FindAll(ctx context.Context) ([]model.Film, error)
	// Save inserts a transient film and sets its ID
	Save(ctx context.Context, film *model.Film) error
	// Update overwrites the stored film having the same ID. Matching no row is not an error.
	Update(ctx context.Context, film *model.Film) error
	// Delete removes the stored film having the same ID. Matching no row is not an error.
	Delete(ctx context.Context, film *model.Film) error
}

// Pinger is implemented by repositories that can check their connection
type Pinger interface {
	Ping(ctx context.Context) error
}
