package truco

import "errors"

var (
	ErrHandEnded = errors.New("hand already ended")
	ErrMatchOver = errors.New("match already decided")
)

// InvalidInputError reports a human response that is not a number or is
// outside the offered options. It is never auto-retried by the engine.
type InvalidInputError string

func (e InvalidInputError) Error() string { return "invalid input: " + string(e) }

func ErrInvalidInput(msg string) error { return InvalidInputError(msg) }

// InvalidCardError reports a card outside the 40-card deck domain. It
// indicates a programming error upstream, not a recoverable condition.
type InvalidCardError string

func (e InvalidCardError) Error() string { return "invalid card: " + string(e) }

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }
