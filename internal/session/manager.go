// Package session implements the account and session workflows: signup,
// login, auto-login, logout and profile updates, on top of the durable
// key-value store.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/avetrov/profilekeeper/internal/common"
	"github.com/avetrov/profilekeeper/internal/identity"
	"github.com/avetrov/profilekeeper/internal/logging"
	"github.com/avetrov/profilekeeper/internal/store"
)

// Persisted layout: a single account slot plus the remember-me pair.
// The remembered keys are always written and cleared together.
const (
	userKey               = "user"
	rememberedEmailKey    = "rememberedEmail"
	rememberedPasswordKey = "rememberedPassword"
)

// Manager owns the lifecycle of the stored account and the remembered
// session. It holds no state of its own besides a mutex that serializes
// read-merge-write mutations, so two overlapping profile updates cannot
// silently drop each other's fields.
type Manager struct {
	store store.Store
	log   logging.Logger
	mu    sync.Mutex
}

func NewManager(s store.Store, log logging.Logger) *Manager {
	return &Manager{store: s, log: log}
}

// ProfileUpdate carries a partial profile edit. Nil fields are left
// unchanged; the password cannot be changed through a profile update.
type ProfileUpdate struct {
	Name      *string
	Email     *string
	AvatarRef *string
}

// loadUser reads the account slot. A missing key yields (nil, nil). A
// record that fails to decode is logged and reported the same way, so
// callers treat corrupt data as "no usable account".
func (m *Manager) loadUser(ctx context.Context) (*identity.User, error) {
	raw, err := m.store.Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("read account: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	u, err := identity.Decode(raw)
	if err != nil {
		m.log.Warn(ctx, "stored account is not decodable, treating as absent", "error", err)
		return nil, nil
	}
	return u, nil
}

// Signup creates the account. All four fields must be non-empty and the
// passwords must match, otherwise it fails with common.ErrValidation.
// If the stored account already uses the given email it fails with
// common.ErrDuplicateAccount. On success the new record lands in the
// account slot with exactly one durable write; a previously stored
// record under a different email is overwritten, since only one slot
// exists.
func (m *Manager) Signup(ctx context.Context, name, email, password, confirm string) (*identity.User, error) {
	if name == "" || email == "" || password == "" || confirm == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cur, err := m.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if cur != nil && cur.Email == email {
		return nil, common.ErrDuplicateAccount
	}

	u := &identity.User{Name: name, Email: email, Password: password}
	if err := m.store.Set(ctx, userKey, identity.Encode(u)); err != nil {
		return nil, fmt.Errorf("write account: %w", err)
	}

	m.log.Info(ctx, "account created", "email", email)
	return u, nil
}

// Login checks the supplied credentials against the stored account.
// Empty input fails with common.ErrValidation, a missing (or corrupt)
// account with common.ErrNoAccount, and a mismatch on either field with
// common.ErrInvalidCredentials. The comparison is exact and
// case-sensitive. On success the remember-me pair is written when
// rememberMe is set and cleared when it is not, in both cases as one
// atomic batch.
func (m *Manager) Login(ctx context.Context, email, password string, rememberMe bool) (*identity.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	u, err := m.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrNoAccount
	}
	if u.Email != email || u.Password != password {
		return nil, common.ErrInvalidCredentials
	}

	if rememberMe {
		err = m.store.Update(ctx, func(ctx context.Context, tx store.Store) error {
			if err := tx.Set(ctx, rememberedEmailKey, []byte(email)); err != nil {
				return err
			}
			return tx.Set(ctx, rememberedPasswordKey, []byte(password))
		})
	} else {
		err = m.clearSession(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	m.log.Info(ctx, "login", "email", email, "remember", rememberMe)
	return u, nil
}

// AutoLogin restores a session from remembered credentials. It returns
// (nil, nil) when no credentials are remembered or when they no longer
// match the stored account; stale credentials are not an error. It
// never mutates state, so calling it repeatedly yields the same result.
func (m *Manager) AutoLogin(ctx context.Context) (*identity.User, error) {
	email, err := m.store.Get(ctx, rememberedEmailKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	password, err := m.store.Get(ctx, rememberedPasswordKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if email == nil || password == nil {
		return nil, nil
	}

	u, err := m.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Email != string(email) || u.Password != string(password) {
		return nil, nil
	}
	return u, nil
}

// Logout clears the remembered credentials and nothing else; the stored
// account is untouched. Logging out without a session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.clearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.log.Info(ctx, "logout")
	return nil
}

// UpdateProfile merges upd over the stored record and writes the result
// back. Fails with common.ErrNoAccount when no account exists. Each
// call is one read and one write; callers firing rapid edits should
// debounce, there is no coalescing here.
func (m *Manager) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*identity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrNoAccount
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.AvatarRef != nil {
		u.AvatarRef = *upd.AvatarRef
	}

	if err := m.store.Set(ctx, userKey, identity.Encode(u)); err != nil {
		return nil, fmt.Errorf("write account: %w", err)
	}
	return u, nil
}

func (m *Manager) clearSession(ctx context.Context) error {
	return m.store.Update(ctx, func(ctx context.Context, tx store.Store) error {
		if err := tx.Delete(ctx, rememberedEmailKey); err != nil {
			return err
		}
		return tx.Delete(ctx, rememberedPasswordKey)
	})
}
