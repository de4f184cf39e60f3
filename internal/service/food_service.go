package service

import (
	"context"
	"errors"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"nutrisync/nutrisync-app/internal/scoring"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrFoodNotFound     = errors.New("food not found")
	ErrFoodAccessDenied = errors.New("access denied to this food")
	ErrValidationFailed = errors.New("validation failed")
)

// FoodService manages an athlete's personal food catalog.
type FoodService interface {
	CreateFood(ctx context.Context, ownerID primitive.ObjectID, name, brand string, per100g scoring.Macros) (*domain.Food, error)
	GetFood(ctx context.Context, ownerID, foodID primitive.ObjectID) (*domain.Food, error)
	GetFoods(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error)
	UpdateFood(ctx context.Context, ownerID, foodID primitive.ObjectID, name, brand string, per100g scoring.Macros) (*domain.Food, error)
	DeleteFood(ctx context.Context, ownerID, foodID primitive.ObjectID) error
}

type foodService struct {
	foodRepo repository.FoodRepository
}

// NewFoodService creates a new instance of foodService.
func NewFoodService(foodRepo repository.FoodRepository) FoodService {
	return &foodService{foodRepo: foodRepo}
}

func validMacros(m scoring.Macros) bool {
	return m.Calories >= 0 && m.Protein >= 0 && m.Carbs >= 0 && m.Fat >= 0
}

// CreateFood adds an entry to the owner's catalog.
func (s *foodService) CreateFood(ctx context.Context, ownerID primitive.ObjectID, name, brand string, per100g scoring.Macros) (*domain.Food, error) {
	if name == "" || !validMacros(per100g) {
		return nil, ErrValidationFailed
	}
	food := &domain.Food{
		OwnerID: ownerID,
		Name:    name,
		Brand:   brand,
		Per100g: per100g,
	}
	id, err := s.foodRepo.Create(ctx, food)
	if err != nil {
		return nil, err
	}
	food.ID = id
	return food, nil
}

// GetFood returns a catalog entry owned by ownerID.
func (s *foodService) GetFood(ctx context.Context, ownerID, foodID primitive.ObjectID) (*domain.Food, error) {
	food, err := s.foodRepo.GetByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	if food.OwnerID != ownerID {
		return nil, ErrFoodAccessDenied
	}
	return food, nil
}

func (s *foodService) GetFoods(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID cannot be nil")
	}
	return s.foodRepo.GetByOwnerID(ctx, ownerID)
}

// UpdateFood replaces the name, brand and nutrition values, ensuring ownership.
func (s *foodService) UpdateFood(ctx context.Context, ownerID, foodID primitive.ObjectID, name, brand string, per100g scoring.Macros) (*domain.Food, error) {
	if name == "" || !validMacros(per100g) {
		return nil, ErrValidationFailed
	}
	food, err := s.GetFood(ctx, ownerID, foodID)
	if err != nil {
		return nil, err
	}

	food.Name = name
	food.Brand = brand
	food.Per100g = per100g
	if err = s.foodRepo.Update(ctx, food); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

// DeleteFood removes a catalog entry. Logged food keeps its copied macros.
func (s *foodService) DeleteFood(ctx context.Context, ownerID, foodID primitive.ObjectID) error {
	err := s.foodRepo.Delete(ctx, foodID, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		// not found or owned by someone else
		return ErrFoodNotFound
	}
	return err
}
