package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StorageChecker interface {
	CheckStorage(ctx context.Context) error
}

// NewServer initializes the server
func NewServer(filmHandler *FilmHandler, sc StorageChecker) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger, gin.Recovery())
	router.SetTrustedProxies(nil)

	router.GET("/healthz", func(c *gin.Context) {
		if err := sc.CheckStorage(c.Request.Context()); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/films", filmHandler.GETFilms).
		POST("/films", filmHandler.POSTFilm).
		GET("/films/:id", filmHandler.GETFilm).
		PUT("/films/:id", filmHandler.PUTFilm).
		DELETE("/films/:id", filmHandler.DELETEFilm)

	return router
}

// requestLogger logs every request once it has been handled
func requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	log.Debug().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Msg("Request")
}
