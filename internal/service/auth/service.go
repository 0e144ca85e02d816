package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/asistencia-qr/attendance-backend-go/internal/domain/auth"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/user"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) domain.Service {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a signed token. Unknown user
// and wrong password both come back as ErrInvalidCredentials so the
// response does not reveal which usernames exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if u.Estado != "activo" {
		return domain.LoginResponse{}, domain.ErrAccountInactive
	}

	token, expiresAt, err := s.jwtService.GenerateToken(u.ID, u.Username, u.Role, u.WorkerID)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	slog.Info("user logged in", "user_id", u.ID, "rol", u.Role)

	return domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: domain.UserSummary{
			ID:       u.ID,
			Username: u.Username,
			Role:     string(u.Role),
			WorkerID: u.WorkerID,
		},
	}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidToken
	}
	s.jwtService.RevokeToken(token)
	return nil
}
