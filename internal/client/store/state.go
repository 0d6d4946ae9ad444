// Package store holds the client-side session state: the current
// identity and token plus cached mirrors of server resources. State
// changes happen only through dispatched actions, applied one at a
// time in dispatch order; the caches are advisory and never
// authoritative over the server.
package store

import "gamevault/internal/models"

type AuthState struct {
	User  *models.User
	Token string
}

// State is the whole client state. Reviews are double keyed: game id
// to the ordered reviews of that game.
type State struct {
	Auth    AuthState
	Games   []models.Game
	Genres  []models.Genre
	Users   []models.User
	Reviews map[string][]models.Review
	Loading bool
}

func initialState() State {
	return State{
		Reviews: map[string][]models.Review{},
	}
}
