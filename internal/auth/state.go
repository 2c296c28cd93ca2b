// Package auth implements the client-side authentication state store.
//
// State mirrors what the pointmoney web client keeps in browser local
// storage: the signed-in user, an authenticated flag, and an optional
// base64-encoded custom icon. Every mutation writes through to the
// configured Storage backend, so a new process resumes exactly where the
// previous one stopped.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shinichismile/pointmoney01/internal/users"
)

var verboseAuth = os.Getenv("POINTMONEY_VERBOSE") == "1"

// State represents the persisted authentication state of the client.
type State struct {
	User          *users.User `json:"user,omitempty"`
	Authenticated bool        `json:"authenticated"`
	CustomIcon    string      `json:"customIcon,omitempty"`
}

// Store owns the in-memory auth state and its write-through persistence.
// It is meant for the single UI goroutine; it performs no locking of its own.
type Store struct {
	storage Storage
	state   State
}

// NewStore builds a store bound to storage and hydrates it from the
// persisted blob. Missing or unreadable state yields the zero state: the
// client must always be able to reach the login view, so hydration never
// fails.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	data, err := storage.Load()
	if err != nil || len(data) == 0 {
		if verboseAuth && err != nil {
			fmt.Printf("[DEBUG] auth: load failed, starting clean: %v\n", err)
		}
		return s
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		if verboseAuth {
			fmt.Printf("[DEBUG] auth: corrupt state discarded: %v\n", err)
		}
		return s
	}
	s.state = st
	return s
}

// State returns a copy of the current state. The embedded user is cloned
// so callers cannot mutate the store through the returned value.
func (s *Store) State() State {
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// IsAuthenticated reports whether a user is currently signed in.
func (s *Store) IsAuthenticated() bool {
	return s.state.Authenticated && s.state.User != nil
}

// Login records u as the signed-in user, stamping the login time and
// setting the authenticated flag.
func (s *Store) Login(u users.User) error {
	now := time.Now().UTC()
	u.LastLogin = &now
	s.state.User = &u
	s.state.Authenticated = true
	return s.flush()
}

// Logout clears the signed-in user, the authenticated flag and any UI
// customization, and removes the persisted blob.
func (s *Store) Logout() error {
	s.state = State{}
	return s.storage.Clear()
}

// UpdateProfile merges p into the signed-in user. Without a signed-in user
// it is a no-op.
func (s *Store) UpdateProfile(p users.ProfileUpdate) error {
	if s.state.User == nil {
		return nil
	}
	p.Apply(s.state.User)
	return s.flush()
}

// UpdateIcon stores a base64-encoded custom icon on the state.
func (s *Store) UpdateIcon(encoded string) error {
	if _, err := base64.StdEncoding.DecodeString(encoded); err != nil {
		return fmt.Errorf("icon must be base64 encoded: %w", err)
	}
	s.state.CustomIcon = encoded
	return s.flush()
}

// UpdateAvatar sets the avatar URL on the signed-in user. Without a
// signed-in user it is a no-op.
func (s *Store) UpdateAvatar(url string) error {
	if s.state.User == nil {
		return nil
	}
	s.state.User.AvatarURL = url
	return s.flush()
}

func (s *Store) flush() error {
	b, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	if verboseAuth {
		fmt.Printf("[DEBUG] auth: writing state, %d bytes\n", len(b))
	}
	return s.storage.Save(b)
}

// Open hydrates a store from the default storage backend resolved via
// configuration. This is what the command layer uses.
func Open() (*Store, error) {
	storage, err := DefaultStorage()
	if err != nil {
		return nil, err
	}
	return NewStore(storage), nil
}
