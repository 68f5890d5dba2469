package entities

import "errors"

var (
	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrTeamNotFound signals a missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrProductNotFound signals a missing product.
	ErrProductNotFound = errors.New("product not found")
)
