package model

import "time"

// MaxFavorites bounds the favorites set.
const MaxFavorites = 10

// FavoritePair is a user-saved conversion pair. Never mutated in place.
type FavoritePair struct {
	ID        string    `json:"id"`
	From      Currency  `json:"from"`
	To        Currency  `json:"to"`
	CreatedAt time.Time `json:"created_at"`
}
