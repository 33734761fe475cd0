package usecases

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"swea-cms.backend/internal/domain/entities"
	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/pkg/jwt"
)

// Dashboard roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// RegisterInput creates a dashboard account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
}

// LoginInput is the dashboard login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService handles dashboard accounts and token issuance.
type AuthService struct {
	userRepo *repositories.Repository[entities.User]
	jwt      *jwt.JWTService
}

func NewAuthService(userRepo *repositories.Repository[entities.User], jwtService *jwt.JWTService) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwtService}
}

// Register creates an account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	role := input.Role
	if role == "" {
		role = RoleEditor
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("an account with this email already exists")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

// Login verifies credentials and issues a token pair. Invalid email and
// invalid password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*jwt.TokenPair, *entities.User, error) {
	if err := checkInput(input); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetBy(ctx, map[string]interface{}{"email": input.Email})
	if err != nil {
		return nil, nil, domainerrors.InternalError(err)
	}
	if user == nil {
		return nil, nil, domainerrors.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, domainerrors.Unauthorized("invalid email or password")
	}

	pair, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, nil, domainerrors.InternalError(err)
	}
	return pair, user, nil
}

// Refresh validates a refresh token and issues a fresh pair. The account
// must still exist.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if user == nil {
		return nil, domainerrors.Unauthorized("account no longer exists")
	}

	pair, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return pair, nil
}
