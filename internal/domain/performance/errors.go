package performance

import "errors"

var (
	ErrPerformanceNotFound = errors.New("performance review not found")
)
