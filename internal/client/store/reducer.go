package store

import "gamevault/internal/models"

// Reduce applies one action and returns the next state. It is pure:
// slices and the reviews map are copied on write, never mutated in
// place. Updates and deletes match on the id field and are no-ops
// when nothing matches.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetAuth:
		user := a.User
		state.Auth = AuthState{User: &user, Token: a.Token}
	case ClearAuth:
		state.Auth = AuthState{}
	case SetLoading:
		state.Loading = a.Loading

	case SetGames:
		state.Games = append([]models.Game(nil), a.Games...)
	case AddGame:
		state.Games = appendItem(state.Games, a.Game)
	case UpdateGame:
		state.Games = replaceItem(state.Games, a.Game, func(g models.Game) string { return g.ID })
	case DeleteGame:
		// The deleted game's reviews stay in the map; the entry is
		// unreachable once the game is gone.
		state.Games = removeItem(state.Games, a.ID, func(g models.Game) string { return g.ID })

	case SetGenres:
		state.Genres = append([]models.Genre(nil), a.Genres...)
	case AddGenre:
		state.Genres = appendItem(state.Genres, a.Genre)
	case UpdateGenre:
		state.Genres = replaceItem(state.Genres, a.Genre, func(g models.Genre) string { return g.ID })
	case DeleteGenre:
		state.Genres = removeItem(state.Genres, a.ID, func(g models.Genre) string { return g.ID })

	case SetUsers:
		state.Users = append([]models.User(nil), a.Users...)
	case UpdateUser:
		user := a.User
		state.Auth = AuthState{User: &user, Token: state.Auth.Token}

	case SetReviews:
		state.Reviews = copyReviews(state.Reviews)
		state.Reviews[a.GameID] = append([]models.Review(nil), a.Reviews...)
	case AddReview:
		state.Reviews = copyReviews(state.Reviews)
		state.Reviews[a.GameID] = appendItem(state.Reviews[a.GameID], a.Review)
	case UpdateReview:
		state.Reviews = copyReviews(state.Reviews)
		state.Reviews[a.GameID] = replaceItem(state.Reviews[a.GameID], a.Review,
			func(r models.Review) string { return r.ID })
	case DeleteReview:
		state.Reviews = copyReviews(state.Reviews)
		state.Reviews[a.GameID] = removeItem(state.Reviews[a.GameID], a.ReviewID,
			func(r models.Review) string { return r.ID })
	}

	return state
}

func appendItem[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func replaceItem[T any](items []T, item T, id func(T) string) []T {
	out := append([]T(nil), items...)
	target := id(item)
	for i := range out {
		if id(out[i]) == target {
			out[i] = item
		}
	}
	return out
}

func removeItem[T any](items []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

func copyReviews(reviews map[string][]models.Review) map[string][]models.Review {
	out := make(map[string][]models.Review, len(reviews))
	for gameID, list := range reviews {
		out[gameID] = list
	}
	return out
}
