// Package services contains server-side business logic. SessionService
// issues and revokes bearer tokens; StudentService owns the student record
// rules; ExportService publishes snapshots to object storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/cryptox"
	"github.com/dmitrijs2005/studentsapi/internal/dbx"
	"github.com/dmitrijs2005/studentsapi/internal/server/config"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/repomanager"
)

// newToken is a seam for tests.
var newToken = cryptox.NewToken

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token     string
	TokenType string
}

type SessionService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	tokenValidity time.Duration
	bcryptCost    int
	now           func() time.Time
}

// NewSessionService builds the service. db may be nil for the memory backend.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		db:            db,
		repomanager:   m,
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
		now:           time.Now,
	}
}

// Login checks the credentials and stores a fresh session. Unknown email and
// wrong password both yield common.ErrorUnauthorized.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.BurnPasswordCheck(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := cryptox.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error checking password: %w", err)
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	var expiresAt *time.Time
	if s.tokenValidity > 0 {
		e := s.now().Add(s.tokenValidity)
		expiresAt = &e
	}

	if err := s.repomanager.Sessions(s.db).Create(ctx, user.ID, cryptox.HashToken(token), expiresAt); err != nil {
		return nil, fmt.Errorf("error storing session: %w", err)
	}

	return &LoginResult{Token: token, TokenType: common.TokenType}, nil
}

// Logout revokes token. A token that is empty, unknown, expired or already
// revoked is common.ErrorUnauthorized.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrorUnauthorized
	}
	hash := cryptox.HashToken(token)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Sessions(tx)

		if _, err := s.liveSession(ctx, repo.Find, hash); err != nil {
			return err
		}

		if err := repo.Delete(ctx, hash); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error deleting session: %w", err)
		}
		return nil
	})
}

// Authenticate resolves a bearer token to its user.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	session, err := s.liveSession(ctx, s.repomanager.Sessions(s.db).Find, cryptox.HashToken(token))
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	return user, nil
}

// FindUserByEmail returns nil without error when no user has that email.
func (s *SessionService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	return user, nil
}

// Register creates a user with a bcrypt-hashed password. A taken email is
// common.ErrorConflict.
func (s *SessionService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password must be at most 72 bytes", common.ErrorValidation)
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// EnsureUser registers the account unless a user with that email exists.
// The bool reports whether a new user was created.
func (s *SessionService) EnsureUser(ctx context.Context, name, email, password string) (*models.User, bool, error) {
	existing, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user, err := s.Register(ctx, name, email, password)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *SessionService) liveSession(ctx context.Context, find func(context.Context, string) (*models.Session, error), hash string) (*models.Session, error) {
	session, err := find(ctx, hash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error looking up session: %w", err)
	}
	if session.Expired(s.now()) {
		return nil, common.ErrorUnauthorized
	}
	return session, nil
}
