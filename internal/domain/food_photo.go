package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodPhoto stores metadata about a meal photo. The image itself lives in
// object storage under ObjectKey.
type FoodPhoto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FoodLogID   primitive.ObjectID `bson:"foodLogId" json:"foodLogId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ObjectKey   string             `bson:"objectKey" json:"-"`
	FileName    string             `bson:"fileName" json:"fileName"`
	ContentType string             `bson:"contentType" json:"contentType"` // e.g. "image/jpeg"
	Size        int64              `bson:"size" json:"size"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
