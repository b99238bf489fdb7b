package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"rodaBack/internal/models"
	"rodaBack/internal/repositories"
	"rodaBack/utils"
)

type AuthService struct {
	AdminRepo  *repositories.AdminRepository
	Tokens     *utils.Manager
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// SignIn verifies the operator's credentials and opens a session: a short
// lived access token plus a stored refresh token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (models.SignInResponse, error) {
	admin, err := s.AdminRepo.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNoRecord) {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.SignInResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.Tokens.NewJWT(admin.ID, admin.Email, s.AccessTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	refreshToken, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}

	session := models.Session{
		ID:           uuid.NewString(),
		AdminID:      admin.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}
	if err := s.AdminRepo.CreateSession(ctx, session); err != nil {
		return models.SignInResponse{}, err
	}

	admin.Password = ""
	return models.SignInResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}

// SignOut closes the session belonging to the refresh token. Signing out an
// unknown token is not an error.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.AdminRepo.DeleteSession(ctx, refreshToken)
}
