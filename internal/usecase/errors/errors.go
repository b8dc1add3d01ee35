package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Upload errors
var (
	ErrUnsupportedMedia = errors.New("unsupported audio type")
	ErrEmptyUpload      = errors.New("uploaded file is empty")
	ErrUploadTooLarge   = errors.New("uploaded file exceeds the size limit")
	ErrUploadNotFound   = errors.New("upload not found or expired")
	ErrUploadMissing    = errors.New("uploaded blob is missing from storage")
)

// Meeting errors
var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrInvalidMeetingID = errors.New("invalid meeting id")
)
