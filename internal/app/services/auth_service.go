package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/yigit/coursedesk/internal/app/models/dto"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/auth"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

// ErrAuthDisabled is returned by Login when no token service is configured
var ErrAuthDisabled = errors.New("authentication is disabled")

// AdminCredentials is the single configured API user
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AuthService issues and validates admin access tokens
type AuthService interface {
	Enabled() bool
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ValidateToken(token string) (*auth.Claims, error)
}

type authServiceImpl struct {
	admin      AdminCredentials
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service. A nil jwtService disables auth.
func NewAuthService(admin AdminCredentials, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (s *authServiceImpl) Enabled() bool {
	return s.jwtService != nil
}

// Login checks the admin credentials and returns a bearer token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	// bcrypt runs even for an unknown username.
	passOK := auth.CheckPassword(s.admin.PasswordHash, req.Password)
	if !userOK || !passOK {
		logger.FromContext(ctx).Warn().Str("username", req.Username).Msg("Rejected login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(s.admin.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// ValidateToken maps token failures onto the API error sentinels
func (s *authServiceImpl) ValidateToken(token string) (*auth.Claims, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}
