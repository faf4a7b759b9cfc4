package llm

import (
	"errors"

	"FitCoach_AIProject/internal/models"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrUpstream          = errors.New("upstream request failed")
	ErrResponseTooLarge  = errors.New("upstream response too large")
	ErrParse             = errors.New("could not parse model output")
	ErrEmptyOutput       = errors.New("model returned no output")
	ErrIncompletePlan    = models.ErrIncompletePlan
)

// MissingCredentialError names the environment variable that was not set.
type MissingCredentialError struct {
	Env string
}

func (e *MissingCredentialError) Error() string {
	return "Missing " + e.Env
}

func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

func missingCredential(env string) error {
	return &MissingCredentialError{Env: env}
}
