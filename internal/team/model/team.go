// Package model provides domain models and DTOs for team module.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
)

// Team represents a team entity in the system.
// Members holds user emails in the order they joined; the list is not checked
// against the users table.
type Team struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	Name        string    `gorm:"column:name;type:varchar(200);not null;uniqueIndex:idx_teams_name" json:"name"`
	Description string    `gorm:"column:description;type:text;not null;default:''"           json:"description"`
	Members     []string  `gorm:"column:members;type:text;serializer:json;not null"          json:"members"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime"                  json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns the record id.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = collection.NewID()
	}
	t.normalize()
	return nil
}

// BeforeSave keeps members serialized as a list even when unset.
func (t *Team) BeforeSave(tx *gorm.DB) error {
	t.normalize()
	return nil
}

func (t *Team) normalize() {
	if t.Members == nil {
		t.Members = []string{}
	}
}
