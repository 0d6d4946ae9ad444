package models

import "time"

type Game struct {
	ID          string
	Title       string
	Description string
	Developer   string
	Release     int
	Price       float64
	CoverURL    string
	VideoURL    string
	// Rating is the average review rating, recomputed by the rating
	// refresh job. Nil until the game has at least one review.
	Rating    *float64
	GenreIDs  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Genre struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Review struct {
	ID        string
	GameID    string
	UserID    string
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
