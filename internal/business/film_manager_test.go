package business_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/filmstore/internal/business"
	"github.com/Agurato/filmstore/internal/infrastructure"
	"github.com/Agurato/filmstore/internal/model"
)

// failingRepository fails every operation with the same error
type failingRepository struct {
	err error
}

func (fr failingRepository) FindByID(context.Context, int64) (*model.Film, error) { return nil, fr.err }
func (fr failingRepository) FindAll(context.Context) ([]model.Film, error)        { return nil, fr.err }
func (fr failingRepository) Save(context.Context, *model.Film) error               { return fr.err }
func (fr failingRepository) Update(context.Context, *model.Film) error             { return fr.err }
func (fr failingRepository) Delete(context.Context, *model.Film) error             { return fr.err }
func (fr failingRepository) Ping(context.Context) error                            { return fr.err }

func TestParseFilmID(t *testing.T) {
	id, err := business.ParseFilmID("12")
	assert.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, input := range []string{"", "abc", "0", "-3", "1.5", "99999999999999999999"} {
		_, err := business.ParseFilmID(input)
		assert.ErrorIs(t, err, model.ErrInvalidFilmID, input)
	}
}

func TestFilmManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Lifecycle", func(t *testing.T) {
		fm := business.NewFilmManager(infrastructure.NewFilmMemory(), model.FixedYear(2024))

		film, err := fm.AddFilm(ctx, "Inception", 2010, 148)
		require.NoError(t, err)
		assert.Equal(t, int64(1), film.ID)
		assert.Equal(t, 14, fm.FilmAge(film))

		film, err = fm.EditFilm(ctx, "1", "Inception", 2010, 150)
		require.NoError(t, err)
		assert.Equal(t, 150, film.Duration)

		found, err := fm.GetFilm(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 150, found.Duration)

		films, err := fm.GetFilms(ctx)
		require.NoError(t, err)
		assert.Len(t, films, 1)

		require.NoError(t, fm.DeleteFilm(ctx, "1"))
		_, err = fm.GetFilm(ctx, "1")
		assert.True(t, business.IsNotFound(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		fm := business.NewFilmManager(infrastructure.NewFilmMemory(), nil)

		_, err := fm.GetFilm(ctx, "7")
		assert.ErrorIs(t, err, model.ErrFilmNotFound)
		assert.Contains(t, err.Error(), "'7'")

		_, err = fm.EditFilm(ctx, "7", "Heat", 1995, 170)
		assert.ErrorIs(t, err, model.ErrFilmNotFound)
		assert.ErrorIs(t, fm.DeleteFilm(ctx, "7"), model.ErrFilmNotFound)
	})

	t.Run("InvalidID", func(t *testing.T) {
		fm := business.NewFilmManager(infrastructure.NewFilmMemory(), nil)

		_, err := fm.GetFilm(ctx, "seven")
		assert.ErrorIs(t, err, model.ErrInvalidFilmID)
		_, err = fm.EditFilm(ctx, "seven", "Heat", 1995, 170)
		assert.ErrorIs(t, err, model.ErrInvalidFilmID)
		assert.ErrorIs(t, fm.DeleteFilm(ctx, "seven"), model.ErrInvalidFilmID)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		storageErr := &model.StorageError{Kind: model.ConnectionError, Op: "ping", Err: errors.New("connection refused")}
		fm := business.NewFilmManager(failingRepository{err: storageErr}, nil)

		_, err := fm.GetFilms(ctx)
		assert.ErrorIs(t, err, model.ErrConnection)
		_, err = fm.AddFilm(ctx, "Heat", 1995, 170)
		assert.ErrorIs(t, err, model.ErrConnection)
		_, err = fm.GetFilm(ctx, "1")
		assert.ErrorIs(t, err, model.ErrConnection)
		assert.False(t, business.IsNotFound(err))
		assert.ErrorIs(t, fm.CheckStorage(ctx), model.ErrConnection)
	})

	t.Run("CheckStorage", func(t *testing.T) {
		fm := business.NewFilmManager(infrastructure.NewFilmMemory(), nil)
		assert.NoError(t, fm.CheckStorage(ctx))
	})
}
