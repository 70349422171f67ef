package model

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name        string   `json:"name"        binding:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// UpdateTeamRequest represents a full replacement of a team's mutable fields.
type UpdateTeamRequest = CreateTeamRequest

// PatchTeamRequest represents a partial update; nil fields are left unchanged.
type PatchTeamRequest struct {
	Name        *string   `json:"name"        binding:"omitempty,min=1"`
	Description *string   `json:"description"`
	Members     *[]string `json:"members"`
}
