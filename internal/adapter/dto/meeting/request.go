package meeting

// CreateMeetingRequest represents the request to create a meeting.
// Blank fields fall back to "Untitled" and "upload".
type CreateMeetingRequest struct {
	Title       string `json:"title" query:"title" validate:"max=255"`
	MeetingType string `json:"meeting_type" query:"meeting_type" validate:"max=64"`
	UploadID    string `json:"upload_id,omitempty" validate:"omitempty,uuid"`
}

// TranscribeUploadRequest names a previously uploaded audio file
type TranscribeUploadRequest struct {
	UploadID string `json:"upload_id" validate:"required,notblank"`
}

// ProcessTranscriptRequest carries a transcript for action extraction
type ProcessTranscriptRequest struct {
	Transcript string `json:"transcript"`
}
