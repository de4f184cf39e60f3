package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleCoach   Role = "coach"
)

// User is a NutriSync profile: an athlete who logs food and training, or a
// coach who follows a roster of athletes.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // never exposed
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// --- Body metrics (athletes) ---
	WeightKg     float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	MaxHeartRate float64 `bson:"maxHeartRate,omitempty" json:"maxHeartRate,omitempty"`

	// --- Coach-specific ---
	AthleteIDs []primitive.ObjectID `bson:"athleteIds,omitempty" json:"athleteIds,omitempty"`

	// --- Athlete-specific ---
	CoachID *primitive.ObjectID `bson:"coachId,omitempty" json:"coachId,omitempty"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}
