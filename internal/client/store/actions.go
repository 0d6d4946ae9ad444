package store

import "gamevault/internal/models"

// Action is a state transition request. Each concrete action carries
// the payload its reducer case needs; adds require the server-assigned
// id to be present.
type Action interface {
	isAction()
}

type SetAuth struct {
	User  models.User
	Token string
}

type ClearAuth struct{}

type SetLoading struct {
	Loading bool
}

type SetGames struct {
	Games []models.Game
}

type AddGame struct {
	Game models.Game
}

type UpdateGame struct {
	Game models.Game
}

type DeleteGame struct {
	ID string
}

type SetGenres struct {
	Genres []models.Genre
}

type AddGenre struct {
	Genre models.Genre
}

type UpdateGenre struct {
	Genre models.Genre
}

type DeleteGenre struct {
	ID string
}

type SetUsers struct {
	Users []models.User
}

// UpdateUser replaces the authenticated user's snapshot after a
// profile change.
type UpdateUser struct {
	User models.User
}

type SetReviews struct {
	GameID  string
	Reviews []models.Review
}

type AddReview struct {
	GameID string
	Review models.Review
}

type UpdateReview struct {
	GameID string
	Review models.Review
}

type DeleteReview struct {
	GameID   string
	ReviewID string
}

func (SetAuth) isAction()      {}
func (ClearAuth) isAction()    {}
func (SetLoading) isAction()   {}
func (SetGames) isAction()     {}
func (AddGame) isAction()      {}
func (UpdateGame) isAction()   {}
func (DeleteGame) isAction()   {}
func (SetGenres) isAction()    {}
func (AddGenre) isAction()     {}
func (UpdateGenre) isAction()  {}
func (DeleteGenre) isAction()  {}
func (SetUsers) isAction()     {}
func (UpdateUser) isAction()   {}
func (SetReviews) isAction()   {}
func (AddReview) isAction()    {}
func (UpdateReview) isAction() {}
func (DeleteReview) isAction() {}
