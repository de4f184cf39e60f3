// internal/repository/mongo/meal_plan_repo.go
package mongo

import (
	"context"
	"errors"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mealPlanCollectionName = "daily_meal_plans"

type mongoMealPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoMealPlanRepository creates a new daily meal plan repository.
func NewMongoMealPlanRepository(db *mongo.Database) repository.MealPlanRepository {
	return &mongoMealPlanRepository{
		collection: db.Collection(mealPlanCollectionName),
	}
}

// Upsert writes the plan for (UserID, Date), replacing any previous version
// while keeping its ID and CreatedAt.
func (r *mongoMealPlanRepository) Upsert(ctx context.Context, plan *domain.DailyMealPlan) error {
	if plan.UserID == primitive.NilObjectID || plan.Date == "" {
		return errors.New("meal plan requires userId and date")
	}
	now := time.Now().UTC()
	plan.UpdatedAt = now

	filter := bson.M{"userId": plan.UserID, "date": plan.Date}
	update := bson.M{
		"$set": bson.M{
			"load":              plan.Load,
			"meals":             plan.Meals,
			"session":           plan.Session,
			"fueling":           plan.Fueling,
			"hydrationTargetMl": plan.HydrationTargetMl,
			"minFatKcal":        plan.MinFatKcal,
			"updatedAt":         now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored domain.DailyMealPlan
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return err
	}
	plan.ID = stored.ID
	plan.CreatedAt = stored.CreatedAt
	return nil
}

// GetByDate retrieves a user's plan for a day.
func (r *mongoMealPlanRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyMealPlan, error) {
	var plan domain.DailyMealPlan
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListDates returns the dates in [from, to] that have a plan, ascending.
func (r *mongoMealPlanRepository) ListDates(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error) {
	filter := bson.M{"userId": userID, "date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetProjection(bson.M{"date": 1}).SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date string `bson:"date"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}
	return dates, nil
}

// EnsureMealPlanIndexes creates necessary indexes for the meal plan collection.
func EnsureMealPlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true), // one plan per user per day
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
