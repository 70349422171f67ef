// Package model provides domain models and DTOs for activity module.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
)

// Activity represents one logged workout session.
// UserEmail is a soft reference to users.email. Distance is nil for
// activities where distance is not measured.
type Activity struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)"                          json:"id"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(254);not null;index:idx_activities_user_email" json:"user_email"`
	ActivityType string    `gorm:"column:activity_type;type:varchar(100);not null;index:idx_activities_type" json:"activity_type"`
	Duration     int       `gorm:"column:duration;not null"                                       json:"duration"`
	Distance     *float64  `gorm:"column:distance"                                                json:"distance"`
	Calories     int       `gorm:"column:calories;not null"                                       json:"calories"`
	Date         time.Time `gorm:"column:date;not null;index:idx_activities_date"                 json:"date"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"                      json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Activity) TableName() string {
	return "activities"
}

// BeforeCreate assigns the record id.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = collection.NewID()
	}
	return nil
}

// Totals aggregates the activities of one user.
type Totals struct {
	TotalCalories   int `gorm:"column:total_calories"`
	TotalDuration   int `gorm:"column:total_duration"`
	TotalActivities int `gorm:"column:total_activities"`
}
