package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/helpers"
	"github.com/yigit/jobtracker/internal/pkg/sessionstore"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// ErrIncorrectCredentials is shown on the login form for an unknown email or a wrong password
var ErrIncorrectCredentials = apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Incorrect email or password")

// Session is a freshly issued login session
type Session struct {
	Token     string
	User      *models.User
	Remember  bool
	ExpiresAt time.Time
}

// AuthService handles authentication operations
type AuthService struct {
	store    repositories.Store
	sessions *auth.SessionService
	revoked  sessionstore.Store
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	store repositories.Store,
	sessions *auth.SessionService,
	revoked sessionstore.Store,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		store:    store,
		sessions: sessions,
		revoked:  revoked,
		logger:   logger,
		now:      time.Now,
	}
}

// Login checks the credentials in the login form and issues a session
func (s *AuthService) Login(ctx context.Context, p validation.Payload) (*Session, error) {
	fields, err := validation.LoginRules.Validate(p)
	if err != nil {
		return nil, err
	}
	email, _ := fields.String("email")
	password, _ := fields.String("password")
	remember, _ := fields.Bool("remember_me")

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Info().Str("email", email).Msg("Login attempt for unknown email")
			return nil, ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.HashedPassword, password) {
		s.logger.Info().Int64("userID", user.ID).Msg("Login attempt with wrong password")
		return nil, ErrIncorrectCredentials
	}

	token, claims, err := s.sessions.Issue(user, remember)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Bool("remember", remember).Msg("User logged in")
	return &Session{
		Token:     token,
		User:      user,
		Remember:  remember,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Register creates an account from the registration form. The password pair
// is checked before any lookup so a mismatch never touches the store.
func (s *AuthService) Register(ctx context.Context, p validation.Payload) (*models.User, error) {
	fields, err := validation.RegisterRules.Validate(p)
	if err != nil {
		return nil, err
	}
	email, _ := fields.String("email")
	password, _ := fields.String("password")
	name, _ := fields.String("name")
	surname, _ := fields.String("surname")
	city, _ := fields.String("city_from")

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          email,
		Name:           name,
		Surname:        surname,
		Address:        city,
		CityFrom:       city,
		HashedPassword: hash,
	}

	err = s.store.WithinTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		exists, err := tx.Users().EmailExists(ctx, email, 0)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("error registering user")
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User registered")
	return user, nil
}

// Logout revokes the session until it would have expired
func (s *AuthService) Logout(ctx context.Context, identity *auth.Identity) error {
	if identity == nil || identity.TokenID == "" {
		return nil
	}

	ttl := helpers.Remaining(identity.ExpiresAt, s.now())
	if ttl == 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, identity.TokenID, ttl); err != nil {
		s.logger.Error().Err(err).Int64("userID", identity.UserID).Msg("Failed to revoke session")
		return err
	}

	s.logger.Info().Int64("userID", identity.UserID).Msg("User logged out")
	return nil
}

// Authenticate resolves a session token into the identity of a live user
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Identity, error) {
	claims, err := s.sessions.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionInvalid, err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking session: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrSessionRevoked
	}

	identity, err := claims.Identity()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionInvalid, err)
	}

	user, err := s.store.Users().GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, fmt.Errorf("%w: user %d no longer exists", apperrors.ErrSessionInvalid, identity.UserID)
		}
		return nil, err
	}
	identity.Email = user.Email
	identity.Name = user.FullName()
	return identity, nil
}
