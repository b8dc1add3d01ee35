package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting catalogue access
type MeetingRepository interface {
	// Create stores a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List returns all meetings, oldest first
	List(ctx context.Context) ([]*entities.Meeting, error)
}

// UploadRepository tracks uploaded audio handles until they expire
type UploadRepository interface {
	// Save stores the handle for ttl
	Save(ctx context.Context, artifact *entities.AudioArtifact, ttl time.Duration) error

	// FindByID returns entities.ErrUploadNotFound for unknown or expired handles
	FindByID(ctx context.Context, id string) (*entities.AudioArtifact, error)

	// Delete removes the handle
	Delete(ctx context.Context, id string) error
}
