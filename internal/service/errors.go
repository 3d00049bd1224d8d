package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required signup or login
	// field is empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike, so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrMissingUpload is returned when signup is attempted without a
	// profile picture file.
	ErrMissingUpload = errors.New("profile picture is missing")

	// ErrUploadFailed is returned when the uploaded picture cannot be
	// written to disk. Signup is aborted before any user row is created.
	ErrUploadFailed = errors.New("error saving profile picture")
)
