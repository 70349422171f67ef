package model

// CreateUserRequest represents the request to create a user.
type CreateUserRequest struct {
	Name     string  `json:"name"     binding:"required"`
	Email    string  `json:"email"    binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Team     *string `json:"team"`
}

// UpdateUserRequest represents a full replacement of a user's mutable fields.
type UpdateUserRequest = CreateUserRequest

// PatchUserRequest represents a partial update; nil fields are left unchanged.
type PatchUserRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1"`
	Email    *string `json:"email"    binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1"`
	Team     *string `json:"team"`
}
