package mongo

import (
	"context"
	"errors"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const nutritionScoreCollectionName = "nutrition_scores"

type mongoNutritionScoreRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionScoreRepository creates a new score repository.
func NewMongoNutritionScoreRepository(db *mongo.Database) repository.NutritionScoreRepository {
	return &mongoNutritionScoreRepository{
		collection: db.Collection(nutritionScoreCollectionName),
	}
}

// Upsert stores the score for (UserID, Date), overwriting a previous calculation.
func (r *mongoNutritionScoreRepository) Upsert(ctx context.Context, score *domain.NutritionScore) error {
	if score.UserID == primitive.NilObjectID || score.Date == "" {
		return errors.New("score requires userId and date")
	}

	filter := bson.M{"userId": score.UserID, "date": score.Date}
	update := bson.M{
		"$set": bson.M{
			"score":        score.Score,
			"load":         score.Load,
			"breakdown":    score.Breakdown,
			"flags":        score.Flags,
			"calculatedAt": score.CalculatedAt,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 1})

	var stored struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return err
	}
	score.ID = stored.ID
	return nil
}

// GetByDate retrieves the stored score of a day.
func (r *mongoNutritionScoreRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error) {
	var score domain.NutritionScore
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&score)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &score, nil
}

// GetRange returns scores with from <= date <= to, oldest first.
func (r *mongoNutritionScoreRepository) GetRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error) {
	filter := bson.M{"userId": userID, "date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scores []domain.NutritionScore
	if err = cursor.All(ctx, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// EnsureNutritionScoreIndexes creates necessary indexes for the score collection.
func EnsureNutritionScoreIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
