package meeting

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// CreateMeeting registers a meeting in the catalogue
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// GetMeeting retrieves a meeting by ID
	GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// ListMeetings returns the catalogue, oldest first
	ListMeetings(ctx context.Context) ([]*entities.Meeting, error)

	// StoreUpload validates and persists an uploaded audio file and returns its handle
	StoreUpload(ctx context.Context, input UploadInput) (*entities.AudioArtifact, error)

	// OpenUpload resolves a handle and opens the stored audio; callers close the reader
	OpenUpload(ctx context.Context, uploadID string) (*entities.AudioArtifact, io.ReadCloser, error)

	// DiscardUpload removes a handle and its audio
	DiscardUpload(ctx context.Context, uploadID string) error
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
