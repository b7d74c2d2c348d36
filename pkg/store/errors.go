package store

import "errors"

var (
	ErrNotFound         = errors.New("document not found")
	ErrRevisionConflict = errors.New("document revision conflict")
	ErrMissingID        = errors.New("document id is empty")
)
