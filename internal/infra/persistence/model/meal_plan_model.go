package model

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanModel is the GORM-specific struct for the 'meal_plans' table. A user has at most
// one plan per date.
type MealPlanModel struct {
	ID        uuid.UUID   `gorm:"type:varchar(36);primaryKey"`
	UserID    uuid.UUID   `gorm:"type:varchar(36);not null;uniqueIndex:idx_meal_plans_user_date"`
	Date      string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_meal_plans_user_date"`
	Meals     []MealModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// MealModel is the GORM-specific struct for the 'meals' table.
type MealModel struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	PlanID        uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Sequence      int       `gorm:"not null;default:0"`
	Type          string    `gorm:"type:varchar(16);not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Position      string    `gorm:"type:varchar(64)"`
	UserID        uuid.UUID `gorm:"type:varchar(36);not null"`
	Date          string    `gorm:"type:varchar(10);not null"`
	RecipeID      string    `gorm:"type:varchar(64)"`
	FoodID        string    `gorm:"type:varchar(64)"`
	Calories      float64   `gorm:"not null;default:0"`
	Protein       float64   `gorm:"not null;default:0"`
	Carbs         float64   `gorm:"not null;default:0"`
	Fat           float64   `gorm:"not null;default:0"`
	IsPlaceholder bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// All lists every model for migrations.
func All() []any {
	return []any{
		&UserProfileModel{},
		&RecipeModel{},
		&FoodModel{},
		&MealPlanModel{},
		&MealModel{},
	}
}
