// Package services contains the application services of the RxEase client:
// the session store and the per-entity record services built on the generic
// Collection. Services return either a result or an error; callers turn
// errors into display-ready messages with api.UserMessage.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/models"
	"github.com/Aneeb1231/rxease/internal/client/repositories/credentials"
	"github.com/Aneeb1231/rxease/internal/dbx"
)

// ErrNotAuthenticated is reported when no valid session exists. It covers
// both "no stored credential" and "stored credential rejected".
var ErrNotAuthenticated = errors.New("not authenticated")

// SessionStore owns the bearer credential and the authenticated user.
// The credential lives in the transport client for the duration of the
// process and in the local database between runs.
type SessionStore struct {
	client api.Client
	db     *sql.DB
	user   *models.User
}

func NewSessionStore(client api.Client, db *sql.DB) *SessionStore {
	return &SessionStore{client: client, db: db}
}

func (s *SessionStore) credsRepo() credentials.Repository {
	return credentials.NewSQLiteRepository(s.db)
}

// User returns the authenticated user, or nil when logged out.
func (s *SessionStore) User() *models.User { return s.user }

func (s *SessionStore) IsAuthenticated() bool { return s.user != nil }

// Login authenticates with the backend, stores the issued credential, and
// resolves the user's identity. When the identity probe fails after a
// successful token issue, a minimal user built from the submitted email is
// used instead of failing the whole login.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	return s.authenticate(ctx, "/auth/login",
		map[string]string{"email": email, "password": password},
		models.User{Email: email})
}

// Register creates an account; same contract as Login plus a name.
func (s *SessionStore) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return s.authenticate(ctx, "/auth/register",
		map[string]string{"name": name, "email": email, "password": password},
		models.User{Name: name, Email: email})
}

func (s *SessionStore) authenticate(ctx context.Context, path string, body map[string]string, fallback models.User) (*models.User, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := s.client.Do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	s.client.SetToken(resp.Token)

	user := s.fetchIdentity(ctx, fallback)
	if err := s.persistSession(ctx, resp.Token, user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.user = &user
	return &user, nil
}

// fetchIdentity probes /auth/me; on any failure the fallback identity is
// returned so login itself does not fail.
func (s *SessionStore) fetchIdentity(ctx context.Context, fallback models.User) models.User {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return fallback
	}
	if resp.User.Email == "" && resp.User.ID == "" {
		return fallback
	}
	return resp.User
}

// persistSession saves the credential and a cached user snapshot in one
// transaction so a crash cannot leave half a session behind.
func (s *SessionStore) persistSession(ctx context.Context, token string, user models.User) error {
	snapshot, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, credentials.KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, credentials.KeyUser, string(snapshot))
	})
}

// RequestPasswordReset asks the backend to send a reset email. The returned
// message never reveals whether the address exists.
func (s *SessionStore) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := s.client.Do(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	if resp.Message == "" {
		resp.Message = "If an account exists for that email, a reset link has been sent."
	}
	return resp.Message, nil
}

// Logout discards the session locally. No backend call is made.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.client.ClearToken()
	s.user = nil
	return s.credsRepo().Clear(ctx)
}

// Validate checks whether a stored credential still identifies a user.
// Without a stored credential it reports ErrNotAuthenticated immediately,
// issuing no network call. Any probe failure (network, 401, malformed
// response) discards the credential. Safe to call repeatedly.
func (s *SessionStore) Validate(ctx context.Context) (*models.User, error) {
	token := s.client.Token()
	if token == "" {
		stored, err := s.credsRepo().Get(ctx, credentials.KeyToken)
		if err != nil {
			return nil, fmt.Errorf("read stored credential: %w", err)
		}
		if stored == "" {
			s.user = nil
			return nil, ErrNotAuthenticated
		}
		s.client.SetToken(stored)
	}

	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		s.discard(ctx)
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	if resp.User.Email == "" && resp.User.ID == "" {
		s.discard(ctx)
		return nil, ErrNotAuthenticated
	}

	s.user = &resp.User
	return s.user, nil
}

func (s *SessionStore) discard(ctx context.Context) {
	s.client.ClearToken()
	s.user = nil
	_ = s.credsRepo().Clear(ctx)
}
