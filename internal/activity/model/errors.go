package model

import "github.com/festy23/octofit_tracker/internal/apperror"

// ErrActivityNotFound indicates that the requested activity does not exist.
var ErrActivityNotFound = apperror.NotFound("activity not found")
