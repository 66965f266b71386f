package model

import (
	"time"

	"gorm.io/datatypes"
)

// IngredientModel is one ingredient line stored inside a recipe row.
type IngredientModel struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
}

// RecipeModel is the GORM-specific struct for the 'recipes' table.
type RecipeModel struct {
	ID           string `gorm:"type:varchar(64);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null;index"`
	Categories   datatypes.JSONSlice[string]
	FoodTypes    datatypes.JSONSlice[string]
	Allergens    datatypes.JSONSlice[string]
	PrepTime     int     `gorm:"not null;default:0"`
	CookTime     int     `gorm:"not null;default:0"`
	Calories     float64 `gorm:"not null;default:0"`
	Protein      float64 `gorm:"not null;default:0"`
	Carbs        float64 `gorm:"not null;default:0"`
	Fat          float64 `gorm:"not null;default:0"`
	Ingredients  datatypes.JSONSlice[IngredientModel]
	Instructions datatypes.JSONSlice[string]
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// FoodModel is the GORM-specific struct for the 'foods' table.
type FoodModel struct {
	ID        string  `gorm:"type:varchar(64);primaryKey"`
	Name      string  `gorm:"type:varchar(255);not null;index"`
	Category  string  `gorm:"type:varchar(64);index"`
	Calories  float64 `gorm:"not null;default:0"`
	Protein   float64 `gorm:"not null;default:0"`
	Carbs     float64 `gorm:"not null;default:0"`
	Fat       float64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
