package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strconv"

	"innkeeper/internal/cache"
	apperrors "innkeeper/internal/errors"
	"innkeeper/internal/logger"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
)

type UserService struct {
	userRepo    *repository.UserRepository
	cacheClient *cache.Client
}

func NewUserService(userRepo *repository.UserRepository, cacheClient *cache.Client) *UserService {
	return &UserService{
		userRepo:    userRepo,
		cacheClient: cacheClient,
	}
}

func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already registered: %w", req.Email, apperrors.ErrConflict)
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashPassword(req.Password),
		FirstName:    req.FirstName,
		Surname:      req.Surname,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	user.Email = req.Email
	user.FirstName = req.FirstName
	user.Surname = req.Surname
	if req.Role != "" {
		user.Role = req.Role
	}

	credentialsChanged := false
	if req.Password != "" {
		user.PasswordHash = hashPassword(req.Password)
		credentialsChanged = true
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if credentialsChanged {
		s.invalidateCachedAuth(ctx, user.UserID)
	}
	return user, nil
}

// Deactivate disables an account instead of deleting it so audit rows
// keep a valid assignee
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return apperrors.ErrNotFound
	}

	user.IsActive = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	s.invalidateCachedAuth(ctx, user.UserID)
	return nil
}

// invalidateCachedAuth drops any cached credential for the user so the
// old password stops working within the request, not the cache TTL
func (s *UserService) invalidateCachedAuth(ctx context.Context, userID int64) {
	if s.cacheClient == nil {
		return
	}
	if err := s.cacheClient.InvalidateUser(ctx, strconv.FormatInt(userID, 10)); err != nil {
		logger.WithContext(ctx).Warn("Failed to invalidate cached credentials", "error", err, "user_id", userID)
	}
}

func hashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%x", hash)
}
