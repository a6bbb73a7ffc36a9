// Package auth is the admin login gate: it checks credentials against a bcrypt
// hash and tracks logged-in admins by opaque session token.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/bcrypt"
)

// DevPassword is used when no admin password is configured in a dev env.
const DevPassword = "admin123"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoPassword         = errors.New("admin password is not configured")
)

type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Config struct {
	Username     string
	Email        string
	Password     string
	PasswordHash string
	AllowDev     bool

	SessionTTL      time.Duration
	SessionCapacity int
}

type Authenticator struct {
	identity Identity
	hash     []byte
	sessions *expirable.LRU[string, Identity]
}

func New(cfg Config, log *slog.Logger) (*Authenticator, error) {
	var hash []byte
	switch {
	case cfg.PasswordHash != "":
		hash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = h
	case cfg.AllowDev:
		log.Warn("no admin password configured; using the development default")
		h, err := bcrypt.GenerateFromPassword([]byte(DevPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = h
	default:
		return nil, ErrNoPassword
	}

	if cfg.SessionCapacity <= 0 {
		cfg.SessionCapacity = 1000
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}

	return &Authenticator{
		identity: Identity{Username: cfg.Username, Email: cfg.Email},
		hash:     hash,
		sessions: expirable.NewLRU[string, Identity](cfg.SessionCapacity, nil, cfg.SessionTTL),
	}, nil
}

// Login accepts either the configured username or email and returns a new
// session token.
func (a *Authenticator) Login(_ context.Context, login, password string) (string, Identity, error) {
	login = strings.TrimSpace(login)
	userOK := subtle.ConstantTimeCompare([]byte(login), []byte(a.identity.Username)) == 1 ||
		(a.identity.Email != "" && strings.EqualFold(login, a.identity.Email))

	// always pay for the bcrypt compare so a wrong username is not faster
	pwErr := bcrypt.CompareHashAndPassword(a.hash, []byte(password))
	if !userOK || pwErr != nil {
		return "", Identity{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	a.sessions.Add(token, a.identity)
	return token, a.identity, nil
}

func (a *Authenticator) Logout(_ context.Context, token string) {
	if token != "" {
		a.sessions.Remove(token)
	}
}

// Check reports whether token belongs to a live admin session.
func (a *Authenticator) Check(_ context.Context, token string) (Identity, bool) {
	if token == "" {
		return Identity{}, false
	}
	return a.sessions.Get(token)
}
