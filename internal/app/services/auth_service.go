package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/app/repositories"
	"github.com/hariz/collegems/internal/pkg/apperrors"
	"github.com/hariz/collegems/internal/pkg/auth"
	"github.com/hariz/collegems/internal/pkg/dberrors"
	"github.com/rs/zerolog"
)

// AdminCredentials holds the configured administrator bypass pair. Logins
// matching this pair succeed without touching the users table.
type AdminCredentials struct {
	Email    string
	Password string
}

// AuthService handles registration, login and token issuance
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	admin      AdminCredentials
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	admin AdminCredentials,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		admin:      admin,
		logger:     logger,
	}
}

// Register stores a new credential record with a hashed password and returns
// a signed token plus the public user projection.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Name, email and password are required")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("User with this email already exists")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = string(models.RoleStudent)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Phone:    req.Phone,
		Course:   req.Course,
		Role:     models.RoleType(role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Backstop for registrations racing past the exists check
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.NewConflictError("User with this email already exists")
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("User registered")

	token, err := s.jwtService.GenerateToken(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User: dto.UserInfo{
			ID:    strconv.FormatInt(user.ID, 10),
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

// Login verifies credentials and issues a signed token. The configured admin
// pair short-circuits the lookup; every other failure returns the same
// invalid-credentials error so callers cannot discover which emails exist.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == s.admin.Email && req.Password == s.admin.Password {
		token, err := s.jwtService.GenerateToken("admin")
		if err != nil {
			return nil, fmt.Errorf("token generation error: %w", err)
		}
		s.logger.Info().Str("email", req.Email).Msg("Admin login")
		return &dto.AuthResponse{
			Message: "Admin login successful",
			Token:   token,
			User: dto.UserInfo{
				ID:    "admin",
				Name:  "Admin",
				Email: req.Email,
				Role:  string(models.RoleAdmin),
			},
		}, nil
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserInfo{
			ID:    strconv.FormatInt(user.ID, 10),
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}
