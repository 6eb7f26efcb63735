package onboarding

import "errors"

var (
	ErrTaskNotFound = errors.New("onboarding task not found")
)
