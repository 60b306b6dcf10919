package coverletters

import "errors"

const generationFailurePrefix = "Failed to generate cover letter: "

var (
	// ErrNotFound indicates no letter matches the id for this owner.
	ErrNotFound = errors.New("cover letter not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationFailed indicates the generation client call failed.
	ErrGenerationFailed = errors.New("cover letter generation failed")
)

// GenerationError carries the provider's error behind ErrGenerationFailed.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return generationFailurePrefix + e.Err.Error()
}

func (e *GenerationError) Unwrap() []error {
	return []error{ErrGenerationFailed, e.Err}
}
