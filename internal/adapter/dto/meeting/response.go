package meeting

import (
	"time"

	"github.com/google/uuid"
)

// MeetingResponse represents a catalogue entry
type MeetingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	MeetingType string    `json:"meeting_type"`
	UploadID    string    `json:"upload_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UploadResponse is returned once an audio file has been stored
type UploadResponse struct {
	Status    string    `json:"status" example:"received"`
	UploadID  string    `json:"upload_id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TranscribeUploadResponse carries the transcript of an uploaded file
type TranscribeUploadResponse struct {
	UploadID     string `json:"upload_id"`
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name"`
	Text         string `json:"text"`
}
