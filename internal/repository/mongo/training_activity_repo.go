// internal/repository/mongo/training_activity_repo.go
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

const trainingActivityCollectionName = "training_activities"

// mongoTrainingActivityRepository implements repository.TrainingActivityRepository
type mongoTrainingActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingActivityRepository creates a new training activity repository.
func NewMongoTrainingActivityRepository(db *mongo.Database) repository.TrainingActivityRepository {
	return &mongoTrainingActivityRepository{
		collection: db.Collection(trainingActivityCollectionName),
	}
}

// Create inserts a new activity.
func (r *mongoTrainingActivityRepository) Create(ctx context.Context, activity *domain.TrainingActivity) (primitive.ObjectID, error) {
	if activity.UserID == primitive.NilObjectID || activity.Date == "" || activity.Type == "" {
		return primitive.NilObjectID, errors.New("activity requires userId, date, and type")
	}
	activity.ID = primitive.NewObjectID()
	activity.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted activity ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single activity by its ID.
func (r *mongoTrainingActivityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingActivity, error) {
	var activity domain.TrainingActivity
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// GetByDate lists a user's activities for one day, earliest first.
func (r *mongoTrainingActivityRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.TrainingActivity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID, "date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []domain.TrainingActivity
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Delete removes an activity owned by userID.
func (r *mongoTrainingActivityRepository) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	if id == primitive.NilObjectID || userID == primitive.NilObjectID {
		return errors.New("activity ID and user ID are required for deletion")
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrainingActivityIndexes creates necessary indexes. Call during startup.
func EnsureTrainingActivityIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
