package auth

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"nearmarket/internal/location"
	"nearmarket/internal/marketerrors"
	"nearmarket/internal/models"
	"nearmarket/internal/repository"
	"nearmarket/utils"
)

// ProfileUpdate carries optional profile mutations; nil fields stay as-is.
type ProfileUpdate struct {
	FullName    *string
	Bio         *string
	AvatarURL   *string
	IsBuyer     *bool
	IsSeller    *bool
	IsOnboarded *bool
}

// AuthService wraps account creation, credential checks and profile
// management around the user store.
type AuthService struct {
	users  repository.UserStore
	tokens *TokenManager
}

// NewAuthService creates a new AuthService instance
func NewAuthService(users repository.UserStore, tokens *TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// SignUp registers a new account and returns the user with a session token
func (s *AuthService) SignUp(email, password, fullName string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, "", fmt.Errorf("service: %w - malformed email", marketerrors.ErrValidation)
	}
	if len(password) < 8 {
		return models.User{}, "", fmt.Errorf("service: %w - password must be at least 8 characters", marketerrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:       utils.GenerateID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		IsBuyer:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(user); err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to create user %s: %w", email, err)
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to issue token for user %s: %w", user.UserID, err)
	}
	return user, token, nil
}

// SignIn checks credentials and returns the user with a fresh session token
func (s *AuthService) SignIn(email, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		// Do not reveal whether the account exists.
		return models.User{}, "", fmt.Errorf("service: sign in %s: %w", email, marketerrors.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", fmt.Errorf("service: sign in %s: %w", email, marketerrors.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to issue token for user %s: %w", user.UserID, err)
	}
	return user, token, nil
}

// VerifyToken resolves a session token to its user id
func (s *AuthService) VerifyToken(token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", fmt.Errorf("service: %w: %v", marketerrors.ErrUnauthorized, err)
	}
	return userID, nil
}

// CurrentUser returns the user behind a session token
func (s *AuthService) CurrentUser(userID string) (models.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of the update to the user
func (s *AuthService) UpdateProfile(userID string, update ProfileUpdate) (models.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.IsBuyer != nil {
		user.IsBuyer = *update.IsBuyer
	}
	if update.IsSeller != nil {
		user.IsSeller = *update.IsSeller
	}
	if update.IsOnboarded != nil {
		user.IsOnboarded = *update.IsOnboarded
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.UpdateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// SaveLocation stores a resolved fix as the user's profile location
func (s *AuthService) SaveLocation(userID string, fix location.Fix) (models.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	lat, lon := fix.Latitude, fix.Longitude
	user.Location = models.Location{
		City:      fix.City,
		Region:    fix.Region,
		Country:   fix.Country,
		Latitude:  &lat,
		Longitude: &lon,
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.UpdateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to save location for user %s: %w", userID, err)
	}
	return user, nil
}
