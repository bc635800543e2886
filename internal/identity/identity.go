// Package identity handles login, registration and session persistence.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courierPortal/internal/cache"
	"courierPortal/internal/errs"
	"courierPortal/internal/schema"
	"courierPortal/internal/store"
	"courierPortal/models"
)

// RegisterSpec carries registration input. Role is not part of it:
// registration always produces a customer; agent and admin accounts are
// provisioned administratively.
type RegisterSpec struct {
	Name     string
	Email    string
	Password string
	Contact  models.Contact
	Avatar   string
}

// Manager runs identity operations against the record store and keeps
// the durable session slot in sync.
type Manager struct {
	store    store.RecordStore
	sessions SessionStore
	state    *cache.State
	log      *zap.Logger
}

// NewManager creates an identity manager.
func NewManager(st store.RecordStore, sessions SessionStore, state *cache.State, log *zap.Logger) *Manager {
	return &Manager{store: st, sessions: sessions, state: state, log: log}
}

// Login matches stored email and password exactly and returns the first
// match, then persists the session.
//
// SECURITY GAP (preserved portal behavior, do not fix silently): the
// password is compared in plaintext, and ambiguity across duplicate
// emails resolves to first found.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	rec, err := m.store.UserByCredentials(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	view, err := schema.UserView(rec)
	if err != nil {
		m.log.Error("user record failed mapping", zap.Error(err))
		return nil, err
	}
	if err := m.sessions.Save(view); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return view, nil
}

// Register creates a customer account with a fresh identifier. An
// existing account with the same email fails with errs.ErrDuplicate.
func (m *Manager) Register(ctx context.Context, spec RegisterSpec) (*models.User, error) {
	email := strings.TrimSpace(spec.Email)
	if email == "" {
		return nil, &errs.ValidationError{Field: "email", Reason: "is required"}
	}
	if spec.Password == "" {
		return nil, &errs.ValidationError{Field: "password", Reason: "is required"}
	}

	if _, err := m.store.UserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, errs.ErrDuplicate)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	u := &models.User{
		ID:      uuid.NewString(),
		Name:    spec.Name,
		Email:   email,
		Role:    models.RoleCustomer,
		Contact: spec.Contact,
		Avatar:  spec.Avatar,
	}
	if err := m.store.CreateUser(ctx, schema.UserRecordOf(u), spec.Password); err != nil {
		return nil, err
	}
	m.log.Info("registered user", zap.String("email", email))
	return u, nil
}

// Restore loads the logged-in user from the session slot, if populated,
// without re-authenticating.
func (m *Manager) Restore() (*models.User, bool, error) {
	return m.sessions.Load()
}

// Logout clears the session slot and the in-memory shipment cache.
func (m *Manager) Logout() error {
	if err := m.sessions.Clear(); err != nil {
		return err
	}
	m.state.ClearShipments()
	return nil
}
