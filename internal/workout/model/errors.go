package model

import "github.com/festy23/octofit_tracker/internal/apperror"

// ErrWorkoutNotFound indicates that the requested workout does not exist.
var ErrWorkoutNotFound = apperror.NotFound("workout not found")
