package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when a quiz operation is called in the wrong phase.
	ErrInvalidState = errors.New("operation not valid in current phase")
	// ErrPrecondition signals a caller bug, e.g. confirming a label that was never selected.
	ErrPrecondition = errors.New("precondition violated")
	// ErrOutOfRange indicates access to a question index outside the loaded set.
	ErrOutOfRange = errors.New("question index out of range")
	// ErrEmptyQuestionSet indicates no questions were loaded.
	ErrEmptyQuestionSet = errors.New("no questions loaded")
	// ErrQuizNotFound indicates the question set could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrMalformedRecord indicates a question record failed validation.
	ErrMalformedRecord = errors.New("malformed question record")
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}
