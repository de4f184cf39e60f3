package service

import (
	"context"
	"errors"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidMetrics = errors.New("weight must be 0-400 kg and max heart rate 0-250 bpm")
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateMetrics(ctx context.Context, userID primitive.ObjectID, weightKg, maxHeartRate float64) (*domain.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateMetrics stores body weight and max heart rate. Zero clears a value.
func (s *profileService) UpdateMetrics(ctx context.Context, userID primitive.ObjectID, weightKg, maxHeartRate float64) (*domain.User, error) {
	if weightKg < 0 || weightKg > 400 || maxHeartRate < 0 || maxHeartRate > 250 {
		return nil, ErrInvalidMetrics
	}
	if err := s.userRepo.UpdateMetrics(ctx, userID, weightKg, maxHeartRate); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
