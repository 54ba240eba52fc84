package usecase

import (
	"context"
	"errors"
	"fmt"

	"course-portal/internal/data/repository"
	"course-portal/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	// DeactivateUser disables an account; its existing tokens stop working.
	DeactivateUser(ctx context.Context, caller Caller, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, notFound("user")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(users)))
	return response.UsersToResponse(users), nil
}

func (us *userService) DeactivateUser(ctx context.Context, caller Caller, userID string) error {
	id, err := parseID(userID, "user")
	if err != nil {
		return err
	}

	if id == caller.UserID {
		return newError(ErrValidation, "you cannot deactivate your own account")
	}

	if err := us.userRepo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("user")
		}
		return fmt.Errorf("deactivate user: %w", err)
	}

	us.log.Info("User deactivated",
		zap.String("user_id", id.String()),
		zap.String("by", caller.UserID.String()))
	return nil
}
