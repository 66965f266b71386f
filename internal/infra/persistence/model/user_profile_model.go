package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table.
type UserProfileModel struct {
	ID                 uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Name               string    `gorm:"type:varchar(255)"`
	Age                int       `gorm:"not null;default:0"`
	Gender             string    `gorm:"type:varchar(16)"`
	HeightCM           float64   `gorm:"column:height_cm;not null;default:0"`
	WeightKG           float64   `gorm:"column:weight_kg;not null;default:0"`
	BodyFatPercent     *float64
	ActivityMultiplier float64  `gorm:"not null;default:0"`
	FitnessGoal        string   `gorm:"type:varchar(64)"`
	AdjustedTDCI       *float64 `gorm:"column:adjusted_tdci"`
	// HasMealPreferences separates "no preferences" from "preferences without snacks".
	HasMealPreferences bool `gorm:"not null;default:false"`
	SnackPositions     datatypes.JSONSlice[string]
	PortionSizes       datatypes.JSONType[map[string]float64]
	AvoidFoodTypes     datatypes.JSONSlice[string]
	AvoidAllergens     datatypes.JSONSlice[string]
	WorkoutDays        datatypes.JSONSlice[string]
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
