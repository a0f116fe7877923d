package model

import "time"

// State is the lifecycle state of a Film
type State int

const (
	// Transient films have not been saved yet and carry no ID
	Transient State = iota
	// Persisted films have an ID assigned by the storage
	Persisted
)

func (s State) String() string {
	switch s {
	case Transient:
		return "transient"
	case Persisted:
		return "persisted"
	}
	return "unknown"
}

// Film is a row of the films table.
// ID is only ever set by the storage layer upon insert, 0 means it is not set yet.
type Film struct {
	ID       int64  `bson:"_id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Year     int    `bson:"year" json:"year"`
	Duration int    `bson:"duration" json:"duration"` // Minutes
}

// NewFilm creates a transient film
func NewFilm(title string, year, duration int) *Film {
	return &Film{
		Title:    title,
		Year:     year,
		Duration: duration,
	}
}

// State returns Persisted once the film has been given an ID
func (f *Film) State() State {
	if f.ID == 0 {
		return Transient
	}
	return Persisted
}

// IsPersisted checks if the film has been saved
func (f *Film) IsPersisted() bool {
	return f.State() == Persisted
}

// Age returns the number of years between the film's release year and now
func (f *Film) Age(now time.Time) int {
	return now.Year() - f.Year
}

// Clock gives the current time
type Clock func() time.Time

// SystemClock reads the wall clock
var SystemClock Clock = time.Now

// FixedYear returns a clock stuck on the 1st of January of a year
func FixedYear(year int) Clock {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		return t
	}
}

// ExpectState returns an error when the film is not in the wanted state
func (f *Film) ExpectState(want State) error {
	if f.State() == want {
		return nil
	}
	if want == Persisted {
		return ErrFilmNotPersisted
	}
	return ErrFilmAlreadyPersisted
}
