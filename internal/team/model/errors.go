package model

import "github.com/festy23/octofit_tracker/internal/apperror"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = apperror.NotFound("team not found")
	// ErrTeamNameTaken indicates that a team with the given name already exists.
	ErrTeamNameTaken = apperror.Conflict("team with this name already exists")
)
