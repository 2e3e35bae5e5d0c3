package game

import "errors"

var (
	ErrNoPendingEvent = errors.New("no pending event")
	ErrInvalidChoice  = errors.New("invalid choice")
	ErrEventPending   = errors.New("event already pending")
	ErrGameOver       = errors.New("game over")
)
