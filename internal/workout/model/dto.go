package model

// CreateWorkoutRequest represents the request to add a workout to the catalogue.
type CreateWorkoutRequest struct {
	Name             string     `json:"name"              binding:"required"`
	Description      string     `json:"description"       binding:"required"`
	ActivityType     string     `json:"activity_type"     binding:"required"`
	Duration         *int       `json:"duration"          binding:"required,min=0"`
	Difficulty       Difficulty `json:"difficulty"        binding:"required,oneof=Beginner Intermediate Advanced"`
	CaloriesEstimate *int       `json:"calories_estimate" binding:"required,min=0"`
}

// UpdateWorkoutRequest represents a full replacement of a workout's mutable fields.
type UpdateWorkoutRequest = CreateWorkoutRequest

// PatchWorkoutRequest represents a partial update; nil fields are left unchanged.
type PatchWorkoutRequest struct {
	Name             *string     `json:"name"              binding:"omitempty,min=1"`
	Description      *string     `json:"description"`
	ActivityType     *string     `json:"activity_type"     binding:"omitempty,min=1"`
	Duration         *int        `json:"duration"          binding:"omitempty,min=0"`
	Difficulty       *Difficulty `json:"difficulty"        binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	CaloriesEstimate *int        `json:"calories_estimate" binding:"omitempty,min=0"`
}

// Apply copies the request onto w, replacing every mutable field.
func (r *CreateWorkoutRequest) Apply(w *Workout) {
	w.Name = r.Name
	w.Description = r.Description
	w.ActivityType = r.ActivityType
	w.Duration = *r.Duration
	w.Difficulty = r.Difficulty
	w.CaloriesEstimate = *r.CaloriesEstimate
}

// Apply copies the supplied fields onto w.
func (r *PatchWorkoutRequest) Apply(w *Workout) {
	if r.Name != nil {
		w.Name = *r.Name
	}
	if r.Description != nil {
		w.Description = *r.Description
	}
	if r.ActivityType != nil {
		w.ActivityType = *r.ActivityType
	}
	if r.Duration != nil {
		w.Duration = *r.Duration
	}
	if r.Difficulty != nil {
		w.Difficulty = *r.Difficulty
	}
	if r.CaloriesEstimate != nil {
		w.CaloriesEstimate = *r.CaloriesEstimate
	}
}
