package model

import "github.com/festy23/octofit_tracker/internal/apperror"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = apperror.NotFound("user not found")
	// ErrEmailTaken indicates that another user already registered the email.
	ErrEmailTaken = apperror.Conflict("user with this email already exists")
)
