// Package model provides domain models and DTOs for leaderboard module.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
)

// Entry is one row of the leaderboard. Rank is 1-based; a lower rank is better.
// Rows are stored as given and never recomputed from activities.
type Entry struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(36)"                          json:"id"`
	UserEmail       string    `gorm:"column:user_email;type:varchar(254);not null"                   json:"user_email"`
	UserName        string    `gorm:"column:user_name;type:varchar(200);not null"                    json:"user_name"`
	Team            string    `gorm:"column:team;type:varchar(200);not null;index:idx_leaderboard_team" json:"team"`
	TotalCalories   int       `gorm:"column:total_calories;not null;default:0"                       json:"total_calories"`
	TotalActivities int       `gorm:"column:total_activities;not null;default:0"                     json:"total_activities"`
	TotalDuration   int       `gorm:"column:total_duration;not null;default:0"                       json:"total_duration"`
	Rank            int       `gorm:"column:rank;not null;index:idx_leaderboard_rank"                json:"rank"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;autoUpdateTime"                      json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Entry) TableName() string {
	return "leaderboard"
}

// BeforeCreate assigns the record id.
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = collection.NewID()
	}
	return nil
}
