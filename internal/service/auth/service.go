package auth

import (
	"context"
	"crypto/subtle"

	"github.com/attendash/attendance-backend-go/internal/domain/auth"
	"github.com/attendash/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminUsername     string
	adminPasswordHash string
	jwtService        jwt.Service
}

func NewAuthService(adminUsername, adminPasswordHash string, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtService:        jwtService,
	}
}

// Login implements auth.Service. Both the username comparison and the bcrypt
// check run on every attempt so a wrong username costs the same as a wrong
// password.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.adminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(s.adminUsername)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
