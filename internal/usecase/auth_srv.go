package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"
	"course-portal/internal/dto/request"
	"course-portal/internal/dto/response"
	"course-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	// EnsureAdmin provisions the configured admin account if it does not exist yet.
	EnsureAdmin(ctx context.Context, config utils.AdminConfig) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
		now:      time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, newError(ErrConflict, "email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		BirthDate:    req.BirthDate,
		Country:      strings.TrimSpace(req.Country),
		City:         strings.TrimSpace(req.City),
		Role:         entity.RoleUser,
		PasswordHash: hashed,
		IsActive:     true,
	}

	// the pre-check above can race with another registration
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, "email already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// unknown email and wrong password are indistinguishable to the caller
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Login to disabled account", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountDisabled
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, token, expiresAt)
	return &resp, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, config utils.AdminConfig) error {
	email := normalizeEmail(config.Email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if existing != nil {
		if !existing.IsAdmin() {
			s.log.Warn("Configured admin email belongs to a non-admin account", zap.String("email", email))
		}
		return nil
	}

	hashed, err := utils.HashPassword(config.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := s.now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Admin",
		Surname:      "User",
		Email:        email,
		Phone:        "+90 555 123 4567",
		BirthDate:    "1990-01-01",
		Country:      "Turkey",
		City:         "Istanbul",
		Role:         entity.RoleAdmin,
		PasswordHash: hashed,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		// another instance created it between our check and insert
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("Admin user created", zap.String("email", email))
	return nil
}
