package trucker

import "errors"

// Not-found conditions surfaced as 404 by the HTTP layer
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrQuestionNotFound = errors.New("question not found")
)
