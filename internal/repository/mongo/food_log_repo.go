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

const foodLogCollectionName = "food_logs"

type mongoFoodLogRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodLogRepository creates a new food log repository.
func NewMongoFoodLogRepository(db *mongo.Database) repository.FoodLogRepository {
	return &mongoFoodLogRepository{
		collection: db.Collection(foodLogCollectionName),
	}
}

// Create inserts a new food log entry.
func (r *mongoFoodLogRepository) Create(ctx context.Context, entry *domain.FoodLog) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.Date == "" || entry.MealType == "" {
		return primitive.NilObjectID, errors.New("food log requires userId, date, and mealType")
	}
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted food log ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single entry.
func (r *mongoFoodLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodLog, error) {
	var entry domain.FoodLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetByDate lists a user's entries for one day in the order they were eaten.
func (r *mongoFoodLogRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "eatenAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID, "date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.FoodLog
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByEatenBetween lists a user's entries eaten in [from, to), whatever day
// they are filed under.
func (r *mongoFoodLogRepository) GetByEatenBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.FoodLog, error) {
	filter := bson.M{
		"userId":  userID,
		"eatenAt": bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "eatenAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.FoodLog
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SetPhoto links an uploaded photo to the entry.
func (r *mongoFoodLogRepository) SetPhoto(ctx context.Context, id, photoID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"photoId": photoID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an entry owned by userID.
func (r *mongoFoodLogRepository) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFoodLogIndexes creates necessary indexes for the food log collection.
func EnsureFoodLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "eatenAt", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "eatenAt", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
