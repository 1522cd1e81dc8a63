package domain

import "fmt"

type Genre string

const (
	GenreAction     Genre = "Action"
	GenreAventure   Genre = "Aventure"
	GenreRPG        Genre = "RPG"
	GenreSimulation Genre = "Simulation"
	GenreStrategie  Genre = "Stratégie"
	GenreSport      Genre = "Sport"
)

var genres = []Genre{GenreAction, GenreAventure, GenreRPG, GenreSimulation, GenreStrategie, GenreSport}

// Genres returns the closed genre set in display order.
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

func (g Genre) Valid() bool {
	for _, v := range genres {
		if v == g {
			return true
		}
	}
	return false
}

func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown genre %q", s)
	}
	return g, nil
}

type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusPlaying    Status = "Playing"
	StatusCompleted  Status = "Completed"
	StatusDropped    Status = "Dropped"
)

var statuses = []Status{StatusNotStarted, StatusPlaying, StatusCompleted, StatusDropped}

// Statuses returns the closed status set in display order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

const (
	MinRating = 1
	MaxRating = 5
)

// GameRaw is a games row as stored: Platform is the bare platform id.
type GameRaw struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Year     int    `db:"year" json:"year"`
	Platform int64  `db:"platform" json:"platform"`
	Genre    Genre  `db:"genre" json:"genre"`
	Status   Status `db:"status" json:"status"`
	Rating   *int   `db:"rating" json:"rating"`
	Href     string `db:"-" json:"href,omitempty"`
}

// Game is the expanded view of a games row with its platform embedded.
// It is built per request and never persisted.
type Game struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Year     int      `json:"year"`
	Platform Platform `json:"platform"`
	Genre    Genre    `json:"genre"`
	Status   Status   `json:"status"`
	Rating   *int     `json:"rating"`
	Href     string   `json:"href,omitempty"`
}
