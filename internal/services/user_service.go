package services

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"angadBack/internal/models"
	"angadBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     UserRepo
	TokenManager *utils.Manager
	SigningKey   string
}

// SignIn verifies the credential against the stored bcrypt hash. An
// unknown username and a wrong password both collapse to
// ErrInvalidCredentials so callers cannot tell which half failed.
func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.SignInResponse{}, models.ErrInvalidCredentials
		}
		return models.SignInResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return models.SignInResponse{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}
	session := models.Session{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         string(user.Role),
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		Username:     user.Username,
		Role:         user.Role,
		Service:      user.Service,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// CreateUser provisions an account (admin surface). Technicians must
// carry exactly one service; other roles must not carry any.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Username: req.Username, Role: role}
	if role == models.RoleTechnicien {
		service, err := models.ParseServiceType(req.Service)
		if err != nil {
			return models.User{}, err
		}
		user.Service = &service
	} else if req.Service != "" {
		return models.User{}, models.ErrInvalidService
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hash)

	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) generateAccessToken(user models.User) (string, error) {
	claims := &models.Claims{
		UserID:   uint(user.ID),
		Username: user.Username,
		Role:     string(user.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningKey))
}
