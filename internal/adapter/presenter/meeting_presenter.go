package presenter

import (
	"time"

	aidto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/ai"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meeting.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		MeetingType: m.MeetingType,
		UploadID:    m.UploadID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMeetingListResponse converts meetings to DTOs; the result is never nil
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	responses := make([]*meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, ToMeetingResponse(m))
	}
	return responses
}

// ToUploadResponse converts an AudioArtifact; ttl is how long the handle stays valid
func ToUploadResponse(a *entities.AudioArtifact, ttl time.Duration) *meeting.UploadResponse {
	if a == nil {
		return nil
	}

	return &meeting.UploadResponse{
		Status:    "received",
		UploadID:  a.ID,
		Filename:  a.Filename,
		Size:      a.Size,
		ExpiresAt: a.UploadedAt.Add(ttl),
	}
}

// ToTranscribeUploadResponse pairs an upload handle with its transcript
func ToTranscribeUploadResponse(uploadID string, t entities.Transcript) *meeting.TranscribeUploadResponse {
	return &meeting.TranscribeUploadResponse{
		UploadID:     uploadID,
		LanguageCode: t.LanguageCode,
		LanguageName: t.LanguageName,
		Text:         t.NativeText,
	}
}

// ToTranscriptResponse converts a Transcript to TranscriptResponse DTO
func ToTranscriptResponse(t entities.Transcript) *aidto.TranscriptResponse {
	return &aidto.TranscriptResponse{
		LanguageCode: t.LanguageCode,
		LanguageName: t.LanguageName,
		Text:         t.NativeText,
	}
}
