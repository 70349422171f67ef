// Package model provides domain models and DTOs for workout module.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
)

// Difficulty grades a suggested workout.
type Difficulty string

// Workout difficulties.
const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Workout represents a suggested workout from the catalogue.
type Workout struct {
	ID               string     `gorm:"primaryKey;column:id;type:varchar(36)"                             json:"id"`
	Name             string     `gorm:"column:name;type:varchar(200);not null"                            json:"name"`
	Description      string     `gorm:"column:description;type:text;not null"                             json:"description"`
	ActivityType     string     `gorm:"column:activity_type;type:varchar(100);not null;index:idx_workouts_type" json:"activity_type"`
	Duration         int        `gorm:"column:duration;not null"                                          json:"duration"`
	Difficulty       Difficulty `gorm:"column:difficulty;type:varchar(20);not null;index:idx_workouts_difficulty" json:"difficulty"`
	CaloriesEstimate int        `gorm:"column:calories_estimate;not null"                                 json:"calories_estimate"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null;autoCreateTime"                         json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Workout) TableName() string {
	return "workouts"
}

// BeforeCreate assigns the record id.
func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = collection.NewID()
	}
	return nil
}
