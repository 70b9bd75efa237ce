package services

import (
	"context"
	"strings"
	"time"

	"futnion_server/apperrors"
	"futnion_server/models"

	"github.com/google/uuid"
)

// UserAuthService handles registration and login. Hashing and token signing
// are delegated to the injected services; the event bus hears about both
// outcomes.
type UserAuthService struct {
	Users     UserRepository
	Passwords *PasswordService
	Tokens    *TokenService
	Bus       *EventBus
}

func NewUserAuthService(users UserRepository, passwords *PasswordService, tokens *TokenService, bus *EventBus) *UserAuthService {
	return &UserAuthService{Users: users, Passwords: passwords, Tokens: tokens, Bus: bus}
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	ValuePlayer int    `json:"valuePlayer"`
}

// Register creates an account and publishes user:registered.
func (as *UserAuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "email and password are required")
	}

	exists, err := as.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "a user with that email already exists")
	}

	hashed, err := as.Passwords.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:      uuid.NewString(),
		FullName:    input.FullName,
		Email:       email,
		Username:    input.Username,
		Password:    hashed,
		ValuePlayer: input.ValuePlayer,
		Role:        models.RoleUser,
		CreatedAt:   time.Now(),
	}

	created, err := as.Users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	as.Bus.Publish(models.Event{
		Kind:   models.EventUserRegistered,
		UserID: created.UserID,
		Email:  created.Email,
	})
	return created, nil
}

// Login verifies credentials and returns a signed token. Wrong email and
// wrong password are indistinguishable to the caller.
func (as *UserAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := as.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return "", nil, apperrors.New(apperrors.CodeUnauthorized, "invalid credentials")
		}
		return "", nil, err
	}

	if !as.Passwords.ComparePasswords(password, user.Password) {
		return "", nil, apperrors.New(apperrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := as.Tokens.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return "", nil, err
	}

	as.Bus.Publish(models.Event{
		Kind:   models.EventUserLoggedIn,
		UserID: user.UserID,
		Email:  user.Email,
	})
	return token, user, nil
}
