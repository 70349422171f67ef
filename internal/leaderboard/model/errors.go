package model

import "github.com/festy23/octofit_tracker/internal/apperror"

// ErrEntryNotFound indicates that the requested leaderboard entry does not exist.
var ErrEntryNotFound = apperror.NotFound("leaderboard entry not found")
