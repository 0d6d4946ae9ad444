package client

import (
	"context"
	"errors"
	"net/http"

	"gamevault/internal/client/store"
)

type authResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Surname  string `json:"surname,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/register", input, &resp); err != nil {
		return err
	}

	c.store.Dispatch(store.SetAuth{User: resp.User.toModel(), Token: resp.Token})
	return nil
}

func (c *Client) Login(ctx context.Context, email string, password string) error {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/login", body, &resp); err != nil {
		return err
	}

	c.store.Dispatch(store.SetAuth{User: resp.User.toModel(), Token: resp.Token})
	return nil
}

// Restore brings a persisted session back: load the saved token,
// confirm it against the server, and either enter the authenticated
// state or fall back to anonymous and drop the stale session. A cold
// start with nothing persisted is not an error.
func (c *Client) Restore(ctx context.Context, persist store.Persister) error {
	session, err := persist.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoSession) {
			return nil
		}
		return err
	}

	// Provisional auth so the /me call carries the token.
	c.store.Dispatch(store.SetAuth{User: session.User, Token: session.Token})

	var resp struct {
		User userDTO `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			// Expired or tampered token: back to anonymous.
			c.store.Dispatch(store.ClearAuth{})
			c.log.Debug().Int("status", apiErr.Status).Msg("session restore rejected")
			return nil
		}
		c.store.Dispatch(store.ClearAuth{})
		return err
	}

	c.store.Dispatch(store.SetAuth{User: resp.User.toModel(), Token: session.Token})
	return nil
}

func (c *Client) Logout() {
	c.store.Dispatch(store.ClearAuth{})
}

type ProfileUpdateInput struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Surname  *string `json:"surname,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`

	Password        *string `json:"password,omitempty"`
	CurrentPassword string  `json:"currentPassword,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, input ProfileUpdateInput) error {
	state := c.store.State()
	if state.Auth.User == nil {
		return errors.New("not authenticated")
	}

	var resp struct {
		User userDTO `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/users/"+state.Auth.User.ID, input, &resp); err != nil {
		return err
	}

	c.store.Dispatch(store.UpdateUser{User: resp.User.toModel()})
	return nil
}
