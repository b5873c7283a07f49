package domain

import "errors"

// Domain errors
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrMarkupNotFound   = errors.New("markup not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidFile      = errors.New("invalid file")
)
