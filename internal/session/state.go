// Package session holds the client's application state: the signed-in
// user, the contract open in the detail screen, and the dark-mode flag.
// All mutation goes through the named transitions below and is expected
// to happen on the UI goroutine only.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/nhle/worklance/internal/logging"
	"github.com/nhle/worklance/internal/model"
)

// Keys under which state is persisted.
const (
	UserKey = "worklance_user"
	DarkKey = "worklance_dark"
)

// ErrNoSession is returned by operations that need a signed-in user.
var ErrNoSession = errors.New("no active session")

// Storage is the durable key/value store the state persists into.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// State is the explicit application state object.
type State struct {
	storage Storage
	log     logging.Logger

	user           *model.Session
	activeContract string
	dark           bool
}

func New(storage Storage, log logging.Logger) *State {
	return &State{storage: storage, log: log}
}

// Restore loads the persisted session and dark-mode flag. A corrupt
// session record is discarded and reported as no session.
func (s *State) Restore(ctx context.Context) error {
	s.user = nil
	s.activeContract = ""

	raw, ok, err := s.storage.Get(ctx, UserKey)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if ok {
		var u model.Session
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			s.log.Warn(ctx, "discarding unreadable session", "error", err)
			if err := s.storage.Delete(ctx, UserKey); err != nil {
				return fmt.Errorf("discarding session: %w", err)
			}
		} else {
			u.Normalize()
			if u.UserID != "" {
				s.user = &u
			}
		}
	}

	raw, ok, err = s.storage.Get(ctx, DarkKey)
	if err != nil {
		return fmt.Errorf("restoring dark mode: %w", err)
	}
	if ok {
		s.dark, _ = strconv.ParseBool(raw)
	}
	return nil
}

// User returns the signed-in user, or nil.
func (s *State) User() *model.Session {
	return s.user
}

// UserID returns the signed-in user's id, or "" without a session.
func (s *State) UserID() string {
	if s.user == nil {
		return ""
	}
	return s.user.UserID
}

func (s *State) LoggedIn() bool {
	return s.user != nil
}

// SignIn replaces the current session and persists it.
func (s *State) SignIn(ctx context.Context, u model.Session) error {
	u.Normalize()
	if u.UserID == "" {
		return fmt.Errorf("signing in: session has no user id")
	}
	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.user = &u
	s.activeContract = ""
	return nil
}

// UpdateUser merges a profile update into the session and re-persists it.
func (s *State) UpdateUser(ctx context.Context, upd model.ProfileUpdate) error {
	if s.user == nil {
		return ErrNoSession
	}
	u := *s.user
	upd.ApplyTo(&u)
	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.user = &u
	return nil
}

// SignOut clears the persisted and in-memory session. The in-memory
// reference is dropped even if the storage delete fails.
func (s *State) SignOut(ctx context.Context) error {
	s.user = nil
	s.activeContract = ""
	if err := s.storage.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (s *State) persist(ctx context.Context, u model.Session) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := s.storage.Set(ctx, UserKey, string(data)); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// ActiveContractID returns the contract open in the detail screen, or "".
func (s *State) ActiveContractID() string {
	return s.activeContract
}

func (s *State) SetActiveContract(id string) {
	s.activeContract = id
}

func (s *State) ClearActiveContract() {
	s.activeContract = ""
}

func (s *State) DarkMode() bool {
	return s.dark
}

// ToggleDarkMode flips and persists the dark-mode flag, returning the new
// value. The in-memory flag flips even when persisting fails.
func (s *State) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.dark = !s.dark
	if err := s.storage.Set(ctx, DarkKey, strconv.FormatBool(s.dark)); err != nil {
		return s.dark, fmt.Errorf("saving dark mode: %w", err)
	}
	return s.dark, nil
}
