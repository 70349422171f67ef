package model

// DefaultTopLimit is the number of entries returned by top when no limit is given.
const DefaultTopLimit = 10

// CreateEntryRequest represents the request to create a leaderboard entry.
// Omitted totals default to zero.
type CreateEntryRequest struct {
	UserEmail       string `json:"user_email"       binding:"required"`
	UserName        string `json:"user_name"        binding:"required"`
	Team            string `json:"team"             binding:"required"`
	TotalCalories   int    `json:"total_calories"   binding:"min=0"`
	TotalActivities int    `json:"total_activities" binding:"min=0"`
	TotalDuration   int    `json:"total_duration"   binding:"min=0"`
	Rank            int    `json:"rank"             binding:"required,min=1"`
}

// UpdateEntryRequest represents a full replacement of an entry's mutable fields.
type UpdateEntryRequest = CreateEntryRequest

// PatchEntryRequest represents a partial update; nil fields are left unchanged.
type PatchEntryRequest struct {
	UserEmail       *string `json:"user_email"       binding:"omitempty,min=1"`
	UserName        *string `json:"user_name"        binding:"omitempty,min=1"`
	Team            *string `json:"team"             binding:"omitempty,min=1"`
	TotalCalories   *int    `json:"total_calories"   binding:"omitempty,min=0"`
	TotalActivities *int    `json:"total_activities" binding:"omitempty,min=0"`
	TotalDuration   *int    `json:"total_duration"   binding:"omitempty,min=0"`
	Rank            *int    `json:"rank"             binding:"omitempty,min=1"`
}

// Apply copies the request onto e, replacing every mutable field.
func (r *CreateEntryRequest) Apply(e *Entry) {
	e.UserEmail = r.UserEmail
	e.UserName = r.UserName
	e.Team = r.Team
	e.TotalCalories = r.TotalCalories
	e.TotalActivities = r.TotalActivities
	e.TotalDuration = r.TotalDuration
	e.Rank = r.Rank
}

// Apply copies the supplied fields onto e.
func (r *PatchEntryRequest) Apply(e *Entry) {
	if r.UserEmail != nil {
		e.UserEmail = *r.UserEmail
	}
	if r.UserName != nil {
		e.UserName = *r.UserName
	}
	if r.Team != nil {
		e.Team = *r.Team
	}
	if r.TotalCalories != nil {
		e.TotalCalories = *r.TotalCalories
	}
	if r.TotalActivities != nil {
		e.TotalActivities = *r.TotalActivities
	}
	if r.TotalDuration != nil {
		e.TotalDuration = *r.TotalDuration
	}
	if r.Rank != nil {
		e.Rank = *r.Rank
	}
}
