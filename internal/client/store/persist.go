package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gamevault/internal/models"
)

// ErrNoSession means nothing was persisted, which is an ordinary cold
// start, not a failure.
var ErrNoSession = errors.New("no persisted session")

// Session is what survives a client restart: the bearer token plus a
// snapshot of the user it was issued to. The snapshot is only a hint;
// restore confirms it against the server before trusting it.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type Persister interface {
	Save(session Session) error
	Load() (Session, error)
	Clear() error
}

// FilePersister keeps the session in a JSON file, the client-side
// analog of browser local storage.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Save(session Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	if err := os.WriteFile(p.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (p *FilePersister) Load() (Session, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if session.Token == "" {
		return Session{}, ErrNoSession
	}
	return session, nil
}

func (p *FilePersister) Clear() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
