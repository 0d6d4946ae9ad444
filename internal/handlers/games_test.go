package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func gamePayload(title string) gin.H {
	return gin.H{
		"title":       title,
		"description": "a description",
		"developer":   "a studio",
		"release":     2024,
		"price":       59.99,
		"cover":       "https://cdn.example.com/cover.png",
	}
}

func (e *testEnv) createGame(t *testing.T, token, title string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/games", token, gamePayload(title))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["game"].(map[string]any)["id"].(string)
}

func TestGames_RequireAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/games", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/games", "", gamePayload("Hollow Depths"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGames_CRUD(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "ada", "ada@example.com", "secret123")

	id := env.createGame(t, token, "Hollow Depths")

	rec := env.do(t, http.MethodGet, "/api/v1/games/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Hollow Depths", decodeBody(t, rec)["game"].(map[string]any)["title"])

	payload := gamePayload("Hollow Depths II")
	rec = env.do(t, http.MethodPatch, "/api/v1/games/"+id, token, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/games/"+id, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/games/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviews_OwnershipOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	authorToken, _ := env.register(t, "ada", "ada@example.com", "secret123")
	strangerToken, _ := env.register(t, "grace", "grace@example.com", "secret123")
	adminToken := env.registerAdmin(t, "root", "root@example.com", "secret123")

	gameID := env.createGame(t, authorToken, "Hollow Depths")

	rec := env.do(t, http.MethodPost, "/api/v1/games/"+gameID+"/reviews", authorToken, gin.H{
		"rating":  4,
		"comment": "solid",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reviewID := decodeBody(t, rec)["review"].(map[string]any)["id"].(string)

	// A stranger cannot edit or remove it.
	rec = env.do(t, http.MethodPatch, "/api/v1/reviews/"+reviewID, strangerToken, gin.H{"rating": 1})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/reviews/"+reviewID, strangerToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// It is still there.
	rec = env.do(t, http.MethodGet, "/api/v1/games/"+gameID+"/reviews", strangerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody(t, rec)["reviews"].([]any), 1)

	// The author may edit it, an admin may remove it.
	rec = env.do(t, http.MethodPatch, "/api/v1/reviews/"+reviewID, authorToken, gin.H{"rating": 5})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/reviews/"+reviewID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReviews_RatingValidation(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "ada", "ada@example.com", "secret123")
	gameID := env.createGame(t, token, "Hollow Depths")

	for _, rating := range []int{0, 6} {
		rec := env.do(t, http.MethodPost, "/api/v1/games/"+gameID+"/reviews", token, gin.H{
			"rating": rating,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", rating)
	}
}
