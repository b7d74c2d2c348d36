package mongostore

import "errors"

var (
	ErrFailedToConnect   = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
	ErrInvalidDocument   = errors.New("stored document cannot be converted")
)
