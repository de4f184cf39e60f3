package service

import (
	"context"
	"errors"
	"fmt"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"nutrisync/nutrisync-app/internal/scoring"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrActivityNotFound = errors.New("training activity not found")
	ErrInvalidActivity  = errors.New("invalid training activity")
)

// ActivityInput is a recorded session as entered by the athlete.
type ActivityInput struct {
	StartTime       time.Time
	DurationMinutes float64
	Type            string
	AvgHeartRate    float64
	Source          domain.ActivitySource
}

type TrainingActivityService interface {
	RecordActivity(ctx context.Context, userID primitive.ObjectID, in ActivityInput) (*domain.TrainingActivity, error)
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.TrainingActivity, error)
	DeleteActivity(ctx context.Context, userID, activityID primitive.ObjectID) error
}

type trainingActivityService struct {
	activityRepo repository.TrainingActivityRepository
	userRepo     repository.UserRepository
}

// NewTrainingActivityService creates a new instance of trainingActivityService.
func NewTrainingActivityService(activityRepo repository.TrainingActivityRepository, userRepo repository.UserRepository) TrainingActivityService {
	return &trainingActivityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
	}
}

// RecordActivity stores a session. Its intensity zone comes from the average
// heart rate against the athlete's max heart rate and stays 0 if either is unknown.
func (s *trainingActivityService) RecordActivity(ctx context.Context, userID primitive.ObjectID, in ActivityInput) (*domain.TrainingActivity, error) {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if in.StartTime.IsZero() || in.DurationMinutes <= 0 || in.Type == "" {
		return nil, fmt.Errorf("%w: startTime, positive durationMinutes, and type are required", ErrInvalidActivity)
	}
	if in.AvgHeartRate < 0 {
		return nil, fmt.Errorf("%w: avgHeartRate cannot be negative", ErrInvalidActivity)
	}
	switch in.Source {
	case "":
		in.Source = domain.SourceManual
	case domain.SourceManual, domain.SourceStrava, domain.SourceGoogleFit:
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidActivity, in.Source)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	activity := &domain.TrainingActivity{
		UserID:          userID,
		Date:            domain.FormatDate(in.StartTime),
		StartTime:       in.StartTime.UTC(),
		DurationMinutes: in.DurationMinutes,
		Type:            in.Type,
		AvgHeartRate:    in.AvgHeartRate,
		Intensity:       scoring.ZoneForHeartRate(in.AvgHeartRate, user.MaxHeartRate),
		Source:          in.Source,
	}
	id, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, err
	}
	activity.ID = id
	return activity, nil
}

func (s *trainingActivityService) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.TrainingActivity, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return s.activityRepo.GetByDate(ctx, userID, date)
}

func (s *trainingActivityService) DeleteActivity(ctx context.Context, userID, activityID primitive.ObjectID) error {
	err := s.activityRepo.Delete(ctx, activityID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrActivityNotFound
	}
	return err
}
