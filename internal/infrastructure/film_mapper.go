package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Agurato/filmstore/internal/model"
)

const (
	insertFilmQuery  = "INSERT INTO films (id, title, year, duration) VALUES (NULL, :title, :year, :duration)"
	updateFilmQuery  = "UPDATE films SET title = :title, year = :year, duration = :duration WHERE id = :id"
	deleteFilmQuery  = "DELETE FROM films WHERE films.id = :id"
	selectFilmQuery  = "SELECT id, title, year, duration FROM films WHERE films.id = :id"
	selectFilmsQuery = "SELECT id, title, year, duration FROM films"
)

// FilmMapper maps films to the films table of a SQL database
type FilmMapper struct {
	db *sql.DB
}

// NewFilmMapper creates a FilmMapper on top of an opened database
func NewFilmMapper(db *sql.DB) *FilmMapper {
	return &FilmMapper{
		db: db,
	}
}

// Ping checks that the database is reachable
func (fm FilmMapper) Ping(ctx context.Context) error {
	return wrapError("ping", fm.db.PingContext(ctx))
}

// FindByID fetches a film from its ID
func (fm FilmMapper) FindByID(ctx context.Context, id int64) (*model.Film, error) {
	row := fm.db.QueryRowContext(ctx, selectFilmQuery, sql.Named("id", id))
	film, err := scanFilm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrFilmNotFound
	}
	if err != nil {
		return nil, wrapError("find film", err)
	}
	return film, nil
}

// FindAll fetches every film of the table
func (fm FilmMapper) FindAll(ctx context.Context) ([]model.Film, error) {
	rows, err := fm.db.QueryContext(ctx, selectFilmsQuery)
	if err != nil {
		return nil, wrapError("find films", err)
	}
	defer rows.Close()

	films := []model.Film{}
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, wrapError("scan film", err)
		}
		films = append(films, *film)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("find films", err)
	}
	return films, nil
}

// Save inserts a film and sets its ID to the generated one
func (fm FilmMapper) Save(ctx context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Transient); err != nil {
		return err
	}
	res, err := fm.db.ExecContext(ctx, insertFilmQuery,
		sql.Named("title", film.Title),
		sql.Named("year", film.Year),
		sql.Named("duration", film.Duration))
	if err != nil {
		return wrapError("insert film", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return wrapError("insert film", err)
	}
	film.ID = id
	return nil
}

// Update overwrites the row of the film with its current fields
func (fm FilmMapper) Update(ctx context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Persisted); err != nil {
		return err
	}
	_, err := fm.db.ExecContext(ctx, updateFilmQuery,
		sql.Named("id", film.ID),
		sql.Named("title", film.Title),
		sql.Named("year", film.Year),
		sql.Named("duration", film.Duration))
	return wrapError("update film", err)
}

// Delete removes the row of the film
func (fm FilmMapper) Delete(ctx context.Context, film *model.Film) error {
	if err := film.ExpectState(model.Persisted); err != nil {
		return err
	}
	_, err := fm.db.ExecContext(ctx, deleteFilmQuery, sql.Named("id", film.ID))
	return wrapError("delete film", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFilm(row rowScanner) (*model.Film, error) {
	var film model.Film
	if err := row.Scan(&film.ID, &film.Title, &film.Year, &film.Duration); err != nil {
		return nil, err
	}
	return &film, nil
}
