package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

const (
	FieldLoginEmail       = "loginEmailError"
	FieldLoginPassword    = "loginPasswordError"
	FieldRegisterName     = "registerNameError"
	FieldRegisterEmail    = "registerEmailError"
	FieldRegisterPassword = "registerPasswordError"
	FieldConfirmPassword  = "confirmPasswordError"

	msgInvalidEmail     = "Please enter a valid email address."
	msgPasswordTooShort = "Password must be at least 6 characters."
	msgNameRequired     = "Please enter your name."
	msgPasswordMismatch = "Passwords do not match."
)

type demoAccount struct {
	password string
	user     domain.User
}

// Hardcoded demo credentials, matched on the exact trimmed email.
var demoAccounts = map[string]demoAccount{
	"admin@example.com": {
		password: "admin123",
		user:     domain.User{ID: 1, Name: "Administrador", Email: "admin@example.com", Role: domain.RoleAdmin},
	},
	"user@example.com": {
		password: "user123",
		user:     domain.User{ID: 2, Name: "Usuario Demo", Email: "user@example.com", Role: domain.RoleUser},
	},
}

// ReminderCanceler drops every pending reminder of a user.
type ReminderCanceler interface {
	CancelUser(userID int64) int
}

type AuthService struct {
	users     ports.UserRepository
	state     *UserStateService
	tokens    *util.JWTManager
	reminders ReminderCanceler
	delay     time.Duration
	now       func() time.Time
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func NewAuthService(users ports.UserRepository, state *UserStateService, tokens *util.JWTManager, reminders ReminderCanceler, delay time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		state:     state,
		tokens:    tokens,
		reminders: reminders,
		delay:     delay,
		now:       time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if !validEmail(email) {
		return nil, newValidationError(msgInvalidEmail, map[string]string{FieldLoginEmail: msgInvalidEmail})
	}
	if util.ValidatePassword(password) != nil {
		return nil, newValidationError(msgPasswordTooShort, map[string]string{FieldLoginPassword: msgPasswordTooShort})
	}

	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	user, err := s.matchCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, *user)
}

func (s *AuthService) matchCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	if account, ok := demoAccounts[email]; ok && account.password == password {
		user := account.user
		return &user, nil
	}
	registered, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, registered.PasswordSalt, registered.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return registered, nil
}

// Register validates every field at once so the form can flag all of them,
// then creates the account and logs it in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)
	confirm := strings.TrimSpace(input.ConfirmPassword)

	fields := map[string]string{}
	if name == "" {
		fields[FieldRegisterName] = msgNameRequired
	}
	if !validEmail(email) {
		fields[FieldRegisterEmail] = msgInvalidEmail
	}
	if util.ValidatePassword(password) != nil {
		fields[FieldRegisterPassword] = msgPasswordTooShort
	}
	if password != confirm {
		fields[FieldConfirmPassword] = msgPasswordMismatch
	}
	if len(fields) > 0 {
		return nil, newValidationError("Please correct the highlighted fields.", fields)
	}

	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}
	created, err := s.users.Create(ctx, domain.User{
		ID:           s.now().UnixMilli(),
		Name:         name,
		Email:        email,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, *created)
}

func (s *AuthService) startSession(ctx context.Context, user domain.User) (*AuthResult, error) {
	user.PasswordHash = nil
	user.PasswordSalt = nil
	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	if err := s.state.StartSession(ctx, user, token); err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate accepts a token only while it is the one stored for its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	stored, user, err := s.state.SessionUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if stored != token {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Logout clears the user's whole namespace and pending reminders.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if s.reminders != nil {
		s.reminders.CancelUser(userID)
	}
	unlock := s.state.Lock(userID)
	defer unlock()
	return s.state.Clear(ctx, userID)
}

func (s *AuthService) Session(ctx context.Context, user *domain.User) (domain.Session, error) {
	if user == nil {
		return domain.Session{}, nil
	}
	_, hasInterests, err := s.state.Interests(ctx, user.ID)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		IsLoggedIn:   true,
		IsAdmin:      user.IsAdmin(),
		User:         user,
		HasInterests: hasInterests,
	}, nil
}
