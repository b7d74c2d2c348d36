package club

import "errors"

var (
	ErrTooManyPlacements  = errors.New("a client can be enrolled in at most 4 groups")
	ErrTooManyAreas       = errors.New("a client can be enrolled in at most 3 different areas")
	ErrDuplicatePlacement = errors.New("the client is already enrolled in this group")
	ErrEmptyPlacement     = errors.New("area and group are required for an enrollment")
)
