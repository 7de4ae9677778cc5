package telegram

import "errors"

var (
	// ErrTokenRequired is returned when a bot token is not provided.
	ErrTokenRequired = errors.New("bot token required")

	// ErrProcessorRequired is returned when a batch processor is not provided.
	ErrProcessorRequired = errors.New("batch processor required")
)
