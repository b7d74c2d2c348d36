package analytics

import "errors"

var (
	ErrInvalidFavorite   = errors.New("malformed favorite")
	ErrUnknownKind       = errors.New("unknown favorite kind")
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrUnknownProjection = errors.New("unknown projection")
	ErrInvalidPeriod     = errors.New("period end is before its start")
)
