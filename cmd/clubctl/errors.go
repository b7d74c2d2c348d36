package main

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownDriver  = errors.New("unknown store driver")
	ErrMissingFlag    = errors.New("missing required flag")
	ErrNotPaymentTask = errors.New("task is not a payment task")
	ErrTaskDone       = errors.New("task is already completed")
)
