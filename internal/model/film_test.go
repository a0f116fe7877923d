package model_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Agurato/filmstore/internal/model"
)

func TestNewFilm(t *testing.T) {
	film := model.NewFilm("Inception", 2010, 148)
	assert.Equal(t, int64(0), film.ID)
	assert.Equal(t, "Inception", film.Title)
	assert.Equal(t, 2010, film.Year)
	assert.Equal(t, 148, film.Duration)
	assert.Equal(t, model.Transient, film.State())
	assert.False(t, film.IsPersisted())

	film.ID = 1
	assert.Equal(t, model.Persisted, film.State())
	assert.Equal(t, "persisted", film.State().String())
}

func TestFilmAge(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		year int
		age  int
	}{
		{year: 2024, age: 0},
		{year: 2019, age: 5},
		{year: 2010, age: 14},
		{year: 2030, age: -6},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.year), func(t *testing.T) {
			assert.Equal(t, tt.age, model.NewFilm("film", tt.year, 90).Age(now))
		})
	}

	t.Run("FixedYear", func(t *testing.T) {
		assert.Equal(t, 14, model.NewFilm("Inception", 2010, 148).Age(model.FixedYear(2024)()))
	})
}

func TestExpectState(t *testing.T) {
	film := model.NewFilm("Inception", 2010, 148)
	assert.NoError(t, film.ExpectState(model.Transient))
	assert.ErrorIs(t, film.ExpectState(model.Persisted), model.ErrFilmNotPersisted)

	film.ID = 3
	assert.NoError(t, film.ExpectState(model.Persisted))
	assert.ErrorIs(t, film.ExpectState(model.Transient), model.ErrFilmAlreadyPersisted)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := fmt.Errorf("could not get films: %w", &model.StorageError{Kind: model.StatementError, Op: "find films", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, model.ErrStatement)
	assert.NotErrorIs(t, err, model.ErrConnection)
	assert.Contains(t, err.Error(), "find films: statement error: disk I/O error")

	var storageErr *model.StorageError
	assert.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "find films", storageErr.Op)

	connErr := &model.StorageError{Kind: model.ConnectionError, Op: "ping", Err: cause}
	assert.ErrorIs(t, connErr, model.ErrConnection)
	assert.NotErrorIs(t, connErr, model.ErrStatement)
}
