package model

import (
	"errors"
	"fmt"
)

var (
	// ErrFilmNotFound is returned when no row matches a film ID
	ErrFilmNotFound = errors.New("film not found")
	// ErrFilmNotPersisted is returned when updating or deleting a film that was never saved
	ErrFilmNotPersisted = errors.New("film is not persisted")
	// ErrFilmAlreadyPersisted is returned when saving a film that already has an ID
	ErrFilmAlreadyPersisted = errors.New("film is already persisted")
	// ErrInvalidFilmID is returned when a film ID cannot be parsed
	ErrInvalidFilmID = errors.New("invalid film ID")

	// ErrConnection matches every StorageError of kind ConnectionError
	ErrConnection = errors.New("connection error")
	// ErrStatement matches every StorageError of kind StatementError
	ErrStatement = errors.New("statement error")
)

// ErrorKind tells apart storage failures
type ErrorKind int

const (
	// StatementError covers malformed queries and constraint violations
	StatementError ErrorKind = iota
	// ConnectionError covers an unreachable or closed database
	ConnectionError
)

func (k ErrorKind) String() string {
	if k == ConnectionError {
		return "connection error"
	}
	return "statement error"
}

// StorageError wraps a driver error with the operation that failed
type StorageError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConnection) and errors.Is(err, ErrStatement) work
func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrConnection:
		return e.Kind == ConnectionError
	case ErrStatement:
		return e.Kind == StatementError
	}
	return false
}
