package importer

import (
	"errors"
	"fmt"
)

var ErrInvalidRow = errors.New("invalid import row")

// RowError ties an error to the source line of the row that caused it.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}
