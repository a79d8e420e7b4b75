// Package auth registers and authenticates users, issues tokens and resolves
// the identity behind a verified token.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/lib/jwt"
	"github.com/mavecode/mavecode-api/internal/lib/password"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

var (
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidAdminCredential = errors.New("invalid admin credentials")
	ErrInvalidGoogleToken     = errors.New("invalid google token")
	ErrGoogleEmailMissing     = errors.New("email not found in token")
	ErrUserNotFound           = errors.New("user not found")
)

const defaultGoogleName = "Google User"

// UserRepository is the user part of the store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// EventPublisher delivers domain events.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg any) error
}

// AdminCredentials are the single hardcoded admin account.
type AdminCredentials struct {
	Username string
	Password string
}

// AuthService implements the auth endpoints.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	events   EventPublisher
	admin    AdminCredentials
	log      *slog.Logger
	now      func() time.Time
}

// NewAuthService creates an AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, events EventPublisher, admin AdminCredentials, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		events:   events,
		admin:    admin,
		log:      log,
		now:      time.Now,
	}
}

// Register creates a user and returns a token for it. The email must not be
// registered yet.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	const op = "services.auth.Register"

	_, err := s.users.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.createUser(ctx, req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, models.EventUserRegistered, models.UserRegisteredEvent{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})

	return s.tokenFor(op, user)
}

// Login checks the password of the user registered with the email.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenFor(op, user)
}

// GoogleLogin signs in with the email of a Google ID token, creating the
// account on first use. The token signature is not verified.
func (s *AuthService) GoogleLogin(ctx context.Context, token string) (*models.TokenResponse, error) {
	const op = "services.auth.GoogleLogin"

	claims, err := jwt.ParseUnverified(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoogleToken, err)
	}
	if claims.Email == "" {
		return nil, ErrGoogleEmailMissing
	}

	user, err := s.users.GetUserByEmail(ctx, claims.Email)
	switch {
	case err == nil:
		return s.tokenFor(op, user)
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	name := claims.Name
	if name == "" {
		name = defaultGoogleName
	}
	// The account gets a random password nobody knows. Google is its only way in.
	user, err = s.createUser(ctx, claims.Email, uuid.NewString(), name, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, models.EventUserRegistered, models.UserRegisteredEvent{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})

	return s.tokenFor(op, user)
}

// AdminLogin checks the admin credentials and returns an admin token.
func (s *AuthService) AdminLogin(_ context.Context, req models.AdminLoginRequest) (string, error) {
	const op = "services.auth.AdminLogin"

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.admin.Password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidAdminCredential
	}

	token, err := s.jwtMaker.GenerateToken(models.AdminID, true)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Identify resolves verified claims to the caller. Admin claims never touch
// the store.
func (s *AuthService) Identify(ctx context.Context, claims *jwt.CustomClaims) (models.Identity, error) {
	const op = "services.auth.Identify"

	if claims.IsAdmin {
		return models.AdminIdentity{}, nil
	}

	user, err := s.users.GetUser(ctx, claims.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return models.UserIdentity{User: user}, nil
}

func (s *AuthService) createUser(ctx context.Context, email, rawPassword, name string, phone *string) (*models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Phone:        phone,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) tokenFor(op string, user *models.User) (*models.TokenResponse, error) {
	token, err := s.jwtMaker.GenerateToken(user.ID, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.TokenResponse{Token: token, User: *user}, nil
}

func (s *AuthService) publish(ctx context.Context, key string, msg any) {
	if err := s.events.Publish(ctx, key, msg); err != nil {
		s.log.Warn("failed to publish event", slog.String("event", key), sl.Err(err))
	}
}
