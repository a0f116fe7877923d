package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/filmstore/internal/model"
)

type FilmManager interface {
	GetFilm(ctx context.Context, filmID string) (*model.Film, error)
	GetFilms(ctx context.Context) ([]model.Film, error)
	AddFilm(ctx context.Context, title string, year, duration int) (*model.Film, error)
	EditFilm(ctx context.Context, filmID, title string, year, duration int) (*model.Film, error)
	DeleteFilm(ctx context.Context, filmID string) error

	FilmAge(film *model.Film) int
}

type FilmHandler struct {
	FilmManager
}

func NewFilmHandler(fm FilmManager) *FilmHandler {
	return &FilmHandler{
		FilmManager: fm,
	}
}

// filmInput is the body of film creation and edition requests. An "id" key is ignored.
type filmInput struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Duration int    `json:"duration"`
}

type filmWithAge struct {
	model.Film
	Age int `json:"age"`
}

// GETFilms lists every film
func (fh FilmHandler) GETFilms(c *gin.Context) {
	films, err := fh.FilmManager.GetFilms(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// GETFilm returns a film and its age
func (fh FilmHandler) GETFilm(c *gin.Context) {
	film, err := fh.FilmManager.GetFilm(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, filmWithAge{
		Film: *film,
		Age:  fh.FilmManager.FilmAge(film),
	})
}

// POSTFilm creates a film
func (fh FilmHandler) POSTFilm(c *gin.Context) {
	var input filmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	film, err := fh.FilmManager.AddFilm(c.Request.Context(), input.Title, input.Year, input.Duration)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, film)
}

// PUTFilm replaces the fields of a film
func (fh FilmHandler) PUTFilm(c *gin.Context) {
	var input filmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	film, err := fh.FilmManager.EditFilm(c.Request.Context(), c.Param("id"), input.Title, input.Year, input.Duration)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// DELETEFilm removes a film
func (fh FilmHandler) DELETEFilm(c *gin.Context) {
	if err := fh.FilmManager.DeleteFilm(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// abortWithError maps business errors to HTTP status codes
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidFilmID):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrFilmNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrConnection):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
