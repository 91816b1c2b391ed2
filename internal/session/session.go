// Package session holds the local user session. The hosted identity provider
// of the web app is re-expressed as an explicit session object loaded from a
// local profile, passed to the code that needs it instead of read from
// ambient global state.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const profileFile = "profile.json"

// Session is the signed-in user, if any
type Session struct {
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar,omitempty"`
	SignedInAt  time.Time `json:"signed_in_at"`
}

// SignedIn reports whether a user is signed in
func (s *Session) SignedIn() bool {
	return s != nil && s.DisplayName != ""
}

// Load reads the session profile from dir. A missing profile means signed
// out and returns (nil, nil).
func Load(dir string) (*Session, error) {
	data, err := os.ReadFile(filepath.Join(dir, profileFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session profile")
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "failed to parse session profile")
	}
	if s.DisplayName == "" {
		return nil, nil
	}
	return &s, nil
}

// SignIn writes a session profile to dir and returns the new session
func SignIn(dir, displayName, avatar string) (*Session, error) {
	if displayName == "" {
		return nil, errors.New("display name is required")
	}

	s := &Session{
		DisplayName: displayName,
		Avatar:      avatar,
		SignedInAt:  time.Now(),
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}
	if err := os.WriteFile(filepath.Join(dir, profileFile), data, 0o600); err != nil {
		return nil, errors.Wrap(err, "failed to write session profile")
	}
	return s, nil
}

// SignOut removes the session profile; signing out while signed out is fine
func SignOut(dir string) error {
	err := os.Remove(filepath.Join(dir, profileFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
