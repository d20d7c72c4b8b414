package poll

import "errors"

var (
	ErrPollActive   = errors.New("a poll is already active")
	ErrNoActivePoll = errors.New("no active poll")
)
