package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"courierPortal/models"
)

// SessionStore is the durable slot the logged-in user is kept in. On
// process start a populated slot restores the session without
// re-authenticating. The backing mechanism is swappable without touching
// the identity manager.
type SessionStore interface {
	Save(u *models.User) error
	Load() (*models.User, bool, error)
	Clear() error
}

const sessionTTL = 7 * 24 * time.Hour

type sessionClaims struct {
	User *models.User `json:"user"`
	jwt.RegisteredClaims
}

// FileSessionStore keeps the session as a signed HS256 token in a single
// file. A token that fails validation (tampered, expired) reads as an
// empty slot rather than an error.
type FileSessionStore struct {
	path   string
	secret []byte
}

// NewFileSessionStore creates a file-backed session store.
func NewFileSessionStore(path, secret string) *FileSessionStore {
	return &FileSessionStore{path: path, secret: []byte(secret)}
}

// Save signs the user view model and writes it to the slot.
func (f *FileSessionStore) Save(u *models.User) error {
	claims := sessionClaims{
		User: u,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("session dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load reads and validates the slot. An absent or invalid slot reports
// no session, not an error.
func (f *FileSessionStore) Load() (*models.User, bool, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read session: %w", err)
	}

	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(string(raw), &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return f.secret, nil
	})
	if err != nil || !tok.Valid || claims.User == nil {
		// Stale or tampered slot; treat as logged out.
		return nil, false, nil
	}
	return claims.User, true, nil
}

// Clear empties the slot.
func (f *FileSessionStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemorySessionStore holds the session in memory; used by tests.
type MemorySessionStore struct {
	user *models.User
}

func (m *MemorySessionStore) Save(u *models.User) error {
	copied := *u
	m.user = &copied
	return nil
}

func (m *MemorySessionStore) Load() (*models.User, bool, error) {
	if m.user == nil {
		return nil, false, nil
	}
	copied := *m.user
	return &copied, true, nil
}

func (m *MemorySessionStore) Clear() error {
	m.user = nil
	return nil
}
