package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gamevault/internal/models"
)

func game(id, title string) models.Game {
	return models.Game{ID: id, Title: title}
}

func review(id, gameID string, rating int) models.Review {
	return models.Review{ID: id, GameID: gameID, Rating: rating}
}

func TestReduce_Auth(t *testing.T) {
	t.Parallel()

	state := initialState()
	user := models.User{ID: "u1", Username: "ada", Role: models.RoleUser}

	state = Reduce(state, SetAuth{User: user, Token: "tok"})
	require.NotNil(t, state.Auth.User)
	require.Equal(t, "u1", state.Auth.User.ID)
	require.Equal(t, "tok", state.Auth.Token)

	state = Reduce(state, ClearAuth{})
	require.Nil(t, state.Auth.User)
	require.Empty(t, state.Auth.Token)
}

func TestReduce_UpdateUserKeepsToken(t *testing.T) {
	t.Parallel()

	state := Reduce(initialState(), SetAuth{
		User:  models.User{ID: "u1", Username: "ada"},
		Token: "tok",
	})

	state = Reduce(state, UpdateUser{User: models.User{ID: "u1", Username: "ada", Bio: "updated"}})
	require.Equal(t, "tok", state.Auth.Token)
	require.Equal(t, "updated", state.Auth.User.Bio)
}

func TestReduce_GameLifecycle(t *testing.T) {
	t.Parallel()

	state := initialState()
	state = Reduce(state, AddGame{Game: game("g1", "one")})
	state = Reduce(state, AddGame{Game: game("g2", "two")})
	require.Len(t, state.Games, 2)

	state = Reduce(state, DeleteGame{ID: "g1"})
	require.Len(t, state.Games, 1)
	require.Equal(t, "g2", state.Games[0].ID)

	state = Reduce(state, UpdateGame{Game: game("g2", "two, renamed")})
	require.Equal(t, "two, renamed", state.Games[0].Title)
}

func TestReduce_UpdateMissingIDIsNoop(t *testing.T) {
	t.Parallel()

	state := Reduce(initialState(), AddGame{Game: game("g1", "one")})
	next := Reduce(state, UpdateGame{Game: game("ghost", "nothing")})
	require.Equal(t, state.Games, next.Games)

	next = Reduce(state, DeleteGame{ID: "ghost"})
	require.Equal(t, state.Games, next.Games)
}

func TestReduce_ReviewsKeyedByGame(t *testing.T) {
	t.Parallel()

	state := initialState()
	state = Reduce(state, AddReview{GameID: "g1", Review: review("r1", "g1", 4)})
	state = Reduce(state, AddReview{GameID: "g2", Review: review("r2", "g2", 2)})

	require.Len(t, state.Reviews["g1"], 1)
	require.Len(t, state.Reviews["g2"], 1)

	// Touching g1's list leaves g2's untouched.
	state = Reduce(state, DeleteReview{GameID: "g1", ReviewID: "r1"})
	require.Empty(t, state.Reviews["g1"])
	require.Len(t, state.Reviews["g2"], 1)
}

// Two racing updates for the same review resolve by dispatch order:
// whichever was dispatched last is what sticks.
func TestReduce_LastDispatchedWins(t *testing.T) {
	t.Parallel()

	state := Reduce(initialState(), AddReview{GameID: "g1", Review: review("r1", "g1", 3)})

	state = Reduce(state, UpdateReview{GameID: "g1", Review: review("r1", "g1", 2)})
	state = Reduce(state, UpdateReview{GameID: "g1", Review: review("r1", "g1", 5)})

	require.Equal(t, 5, state.Reviews["g1"][0].Rating)
}

// Deleting a game does not prune its reviews entry; the entry simply
// becomes unreachable.
func TestReduce_DeleteGameLeavesReviews(t *testing.T) {
	t.Parallel()

	state := initialState()
	state = Reduce(state, AddGame{Game: game("g1", "one")})
	state = Reduce(state, AddReview{GameID: "g1", Review: review("r1", "g1", 4)})

	state = Reduce(state, DeleteGame{ID: "g1"})
	require.Empty(t, state.Games)
	require.Len(t, state.Reviews["g1"], 1)
}

func TestReduce_IsCopyOnWrite(t *testing.T) {
	t.Parallel()

	base := initialState()
	base = Reduce(base, AddGame{Game: game("g1", "one")})
	base = Reduce(base, SetReviews{GameID: "g1", Reviews: []models.Review{review("r1", "g1", 3)}})

	next := Reduce(base, UpdateGame{Game: game("g1", "renamed")})
	next = Reduce(next, UpdateReview{GameID: "g1", Review: review("r1", "g1", 5)})

	// The earlier snapshot is unaffected.
	require.Equal(t, "one", base.Games[0].Title)
	require.Equal(t, 3, base.Reviews["g1"][0].Rating)
	require.Equal(t, "renamed", next.Games[0].Title)
	require.Equal(t, 5, next.Reviews["g1"][0].Rating)
}

func TestReduce_SetGamesReplaces(t *testing.T) {
	t.Parallel()

	state := Reduce(initialState(), AddGame{Game: game("g1", "one")})
	state = Reduce(state, SetGames{Games: []models.Game{game("g2", "two"), game("g3", "three")}})
	require.Len(t, state.Games, 2)
	require.Equal(t, "g2", state.Games[0].ID)
}
