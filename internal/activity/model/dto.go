package model

import (
	"time"

	"github.com/festy23/octofit_tracker/internal/apperror"
)

// DateLayout is the accepted format of the date field.
const DateLayout = time.RFC3339

// CreateActivityRequest represents the request to log an activity.
// Duration and Calories are pointers so that an explicit zero passes "required".
type CreateActivityRequest struct {
	UserEmail    string   `json:"user_email"    binding:"required"`
	ActivityType string   `json:"activity_type" binding:"required"`
	Duration     *int     `json:"duration"      binding:"required,min=0"`
	Distance     *float64 `json:"distance"      binding:"omitempty,min=0"`
	Calories     *int     `json:"calories"      binding:"required,min=0"`
	Date         string   `json:"date"          binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// UpdateActivityRequest represents a full replacement of an activity's mutable fields.
type UpdateActivityRequest = CreateActivityRequest

// PatchActivityRequest represents a partial update; nil fields are left unchanged.
type PatchActivityRequest struct {
	UserEmail    *string  `json:"user_email"    binding:"omitempty,min=1"`
	ActivityType *string  `json:"activity_type" binding:"omitempty,min=1"`
	Duration     *int     `json:"duration"      binding:"omitempty,min=0"`
	Distance     *float64 `json:"distance"      binding:"omitempty,min=0"`
	Calories     *int     `json:"calories"      binding:"omitempty,min=0"`
	Date         *string  `json:"date"          binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ParseDate parses an activity date and normalizes it to UTC so that stored
// dates order correctly, reporting failures against the date field.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validation("date", "must be an RFC 3339 timestamp")
	}
	return t.UTC(), nil
}

// Apply copies the request onto a, replacing every mutable field.
func (r *CreateActivityRequest) Apply(a *Activity) error {
	date, err := ParseDate(r.Date)
	if err != nil {
		return err
	}

	a.UserEmail = r.UserEmail
	a.ActivityType = r.ActivityType
	a.Duration = *r.Duration
	a.Distance = r.Distance
	a.Calories = *r.Calories
	a.Date = date
	return nil
}

// Apply copies the supplied fields onto a.
func (r *PatchActivityRequest) Apply(a *Activity) error {
	if r.Date != nil {
		date, err := ParseDate(*r.Date)
		if err != nil {
			return err
		}
		a.Date = date
	}
	if r.UserEmail != nil {
		a.UserEmail = *r.UserEmail
	}
	if r.ActivityType != nil {
		a.ActivityType = *r.ActivityType
	}
	if r.Duration != nil {
		a.Duration = *r.Duration
	}
	if r.Distance != nil {
		a.Distance = r.Distance
	}
	if r.Calories != nil {
		a.Calories = *r.Calories
	}
	return nil
}
