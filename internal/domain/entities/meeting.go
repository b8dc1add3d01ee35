package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meeting is a catalogue entry for an uploaded or recorded meeting
type Meeting struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	MeetingType string    `json:"meeting_type"`
	UploadID    string    `json:"upload_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Meeting defaults
const (
	DefaultMeetingTitle = "Untitled"
	MeetingTypeUpload   = "upload"
)

// NewMeeting creates a new Meeting entity, applying defaults to blank fields
func NewMeeting(title, meetingType string) *Meeting {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultMeetingTitle
	}
	meetingType = strings.TrimSpace(meetingType)
	if meetingType == "" {
		meetingType = MeetingTypeUpload
	}
	return &Meeting{
		ID:          uuid.New(),
		Title:       title,
		MeetingType: meetingType,
		CreatedAt:   time.Now().UTC(),
	}
}

// AudioArtifact is the handle to an uploaded audio file awaiting processing
type AudioArtifact struct {
	ID          string    `json:"upload_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	ObjectKey   string    `json:"object_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// NewAudioArtifact creates a handle with a fresh ID and a storage key derived from it
func NewAudioArtifact(filename, contentType string, size int64) *AudioArtifact {
	id := uuid.NewString()
	return &AudioArtifact{
		ID:          id,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		ObjectKey:   "uploads/" + id,
		UploadedAt:  time.Now().UTC(),
	}
}

// SupportedAudioTypes is the upload content-type allowlist
var SupportedAudioTypes = map[string]bool{
	"audio/mpeg":  true,
	"audio/wav":   true,
	"audio/x-wav": true,
	"audio/x-m4a": true,
	"audio/mp4":   true,
	"audio/aac":   true,
	"audio/webm":  true,
	"audio/ogg":   true,
}

// IsSupportedAudioType checks a Content-Type header value against the allowlist
func IsSupportedAudioType(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return SupportedAudioTypes[mediaType]
}
