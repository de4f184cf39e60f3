package service

import (
	"context"
	"errors"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrAthleteNotFound        = errors.New("athlete user not found")
	ErrAthleteNotRole         = errors.New("user found but is not an athlete")
	ErrAthleteAlreadyAssigned = errors.New("athlete is already coached by someone else")
	ErrAthleteNotManaged      = errors.New("athlete is not managed by this coach")
)

type CoachService interface {
	AddAthleteByEmail(ctx context.Context, coachID primitive.ObjectID, athleteEmail string) (*domain.User, error)
	GetManagedAthletes(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	GetAthleteWeekly(ctx context.Context, coachID, athleteID primitive.ObjectID, end string) (*WeeklySummary, error)
}

// coachService implements the CoachService interface.
type coachService struct {
	userRepo     repository.UserRepository
	scoreService ScoreService
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(userRepo repository.UserRepository, scoreService ScoreService) CoachService {
	return &coachService{
		userRepo:     userRepo,
		scoreService: scoreService,
	}
}

// AddAthleteByEmail finds an athlete by email and links them to the coach.
func (s *coachService) AddAthleteByEmail(ctx context.Context, coachID primitive.ObjectID, athleteEmail string) (*domain.User, error) {
	if coachID == primitive.NilObjectID || athleteEmail == "" {
		return nil, errors.New("coach ID and athlete email are required")
	}

	athlete, err := s.userRepo.GetByEmail(ctx, athleteEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	if !athlete.IsAthlete() {
		return nil, ErrAthleteNotRole
	}

	if athlete.CoachID != nil && *athlete.CoachID != primitive.NilObjectID {
		if *athlete.CoachID == coachID {
			athlete.PasswordHash = ""
			return athlete, nil
		}
		return nil, ErrAthleteAlreadyAssigned
	}

	if err = s.userRepo.AddAthleteToCoach(ctx, coachID, athlete.ID); err != nil {
		return nil, err
	}
	// Not transactional: a failure here leaves the coach roster ahead of the athlete record.
	if err = s.userRepo.SetCoachForAthlete(ctx, athlete.ID, coachID); err != nil {
		return nil, err
	}

	athlete.CoachID = &coachID
	athlete.PasswordHash = ""
	return athlete, nil
}

// GetManagedAthletes retrieves the coach's roster.
func (s *coachService) GetManagedAthletes(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	athletes, err := s.userRepo.GetAthletesByCoachID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	for i := range athletes {
		athletes[i].PasswordHash = ""
	}
	return athletes, nil
}

// GetAthleteWeekly returns the weekly score of an athlete on the coach's roster.
func (s *coachService) GetAthleteWeekly(ctx context.Context, coachID, athleteID primitive.ObjectID, end string) (*WeeklySummary, error) {
	athlete, err := s.userRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	if athlete.CoachID == nil || *athlete.CoachID != coachID {
		return nil, ErrAthleteNotManaged
	}
	return s.scoreService.Weekly(ctx, athleteID, end)
}
