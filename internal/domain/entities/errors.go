package entities

import "errors"

// Lookup errors returned by repositories
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrUploadNotFound  = errors.New("upload not found")
)
