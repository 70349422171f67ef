// Package model provides domain models and DTOs for user module.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
)

// User represents a user entity in the system.
// Matches the users table schema. Team is a soft reference to teams.name.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                                   json:"id"`
	Name      string    `gorm:"column:name;type:varchar(200);not null"                                  json:"name"`
	Email     string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:idx_users_email"     json:"email"`
	Password  string    `gorm:"column:password;type:varchar(200);not null"                              json:"-"`
	Team      *string   `gorm:"column:team;type:varchar(200);index:idx_users_team"                      json:"team"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"                               json:"created_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the record id.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = collection.NewID()
	}
	return nil
}
