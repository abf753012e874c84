package core

import (
	"errors"
	"fmt"
)

var (
	// ErrModelLoad means the model assets are missing or corrupt. It is fatal at startup.
	ErrModelLoad = errors.New("model assets could not be loaded")
	// ErrGeneration means a generation call failed or timed out for one submission.
	ErrGeneration = errors.New("review generation failed")
	// ErrValidation means the submitted input is outside its declared bounds.
	ErrValidation = errors.New("invalid input")
)

// ValidationError reports which form field was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
