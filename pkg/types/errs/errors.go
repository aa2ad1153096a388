package errs

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")

	ErrCodeNotConfigured = errors.New("event access code is not configured")
	ErrInvalidCode       = errors.New("invalid access code")

	ErrEmptyTagName   = errors.New("empty tag name")
	ErrTagNameTooLong = errors.New("tag name too long")

	ErrInvalidCursor = errors.New("invalid cursor")
)
