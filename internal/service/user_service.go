package service

import (
	"context"
	"time"

	"teamstack/internal/cache"
	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"
	"teamstack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, c cache.Cache) *UserService {
	return &UserService{
		repo:  repo,
		cache: c,
	}
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	cacheKey := cache.UserCacheKey(id)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil
	}

	dbUser, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	// Cache is best effort
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// UpdateUser updates a user's information.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id))

	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id))

	return nil
}
