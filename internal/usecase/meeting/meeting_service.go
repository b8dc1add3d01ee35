package meeting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
)

const defaultUploadName = "audio.wav"

// MeetingService handles the meeting catalogue and uploaded audio handles
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	uploadRepo  repositories.UploadRepository
	store       storage.AudioStore
	uploadTTL   time.Duration
	maxBytes    int64
	logger      *zap.Logger
}

// NewMeetingService creates a new meeting service. maxBytes <= 0 disables the size check.
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	uploadRepo repositories.UploadRepository,
	store storage.AudioStore,
	uploadTTL time.Duration,
	maxBytes int64,
	logger *zap.Logger,
) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{
		meetingRepo: meetingRepo,
		uploadRepo:  uploadRepo,
		store:       store,
		uploadTTL:   uploadTTL,
		maxBytes:    maxBytes,
		logger:      logger,
	}
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title       string
	MeetingType string
	UploadID    string
}

// UploadInput is one uploaded audio file
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CreateMeeting creates a new meeting, linking an existing upload when given
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	meeting := entities.NewMeeting(input.Title, input.MeetingType)

	if id := strings.TrimSpace(input.UploadID); id != "" {
		if _, err := s.findUpload(ctx, id); err != nil {
			return nil, err
		}
		meeting.UploadID = id
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.logger.Info("meeting created",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("meeting_type", meeting.MeetingType),
	)
	return meeting, nil
}

// GetMeeting retrieves a meeting by ID
func (s *MeetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves all meetings
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// StoreUpload checks the content type and size, writes the blob and registers
// the handle for the configured TTL
func (s *MeetingService) StoreUpload(ctx context.Context, input UploadInput) (*entities.AudioArtifact, error) {
	if !entities.IsSupportedAudioType(input.ContentType) {
		return nil, fmt.Errorf("%w: %q", usecaseErrors.ErrUnsupportedMedia, input.ContentType)
	}
	if input.Body == nil || input.Size == 0 {
		return nil, usecaseErrors.ErrEmptyUpload
	}
	if s.maxBytes > 0 && input.Size > s.maxBytes {
		return nil, usecaseErrors.ErrUploadTooLarge
	}

	filename := filepath.Base(strings.TrimSpace(input.Filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		filename = defaultUploadName
	}

	artifact := entities.NewAudioArtifact(filename, input.ContentType, input.Size)

	if err := s.store.Put(ctx, artifact.ObjectKey, input.Body, input.Size, input.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	if err := s.uploadRepo.Save(ctx, artifact, s.uploadTTL); err != nil {
		if delErr := s.store.Delete(ctx, artifact.ObjectKey); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload",
				zap.String("upload_id", artifact.ID),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("failed to register upload: %w", err)
	}

	s.logger.Info("upload stored",
		zap.String("upload_id", artifact.ID),
		zap.String("filename", artifact.Filename),
		zap.Int64("size", artifact.Size),
	)
	return artifact, nil
}

// OpenUpload resolves a handle and opens its audio
func (s *MeetingService) OpenUpload(ctx context.Context, uploadID string) (*entities.AudioArtifact, io.ReadCloser, error) {
	artifact, err := s.findUpload(ctx, uploadID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.store.Open(ctx, artifact.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, usecaseErrors.ErrUploadMissing
		}
		return nil, nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return artifact, rc, nil
}

// DiscardUpload removes the handle first so a half-deleted upload is never served
func (s *MeetingService) DiscardUpload(ctx context.Context, uploadID string) error {
	artifact, err := s.findUpload(ctx, uploadID)
	if err != nil {
		return err
	}
	if err := s.uploadRepo.Delete(ctx, artifact.ID); err != nil {
		return fmt.Errorf("failed to delete upload handle: %w", err)
	}
	if err := s.store.Delete(ctx, artifact.ObjectKey); err != nil {
		return fmt.Errorf("failed to delete upload blob: %w", err)
	}
	return nil
}

func (s *MeetingService) findUpload(ctx context.Context, uploadID string) (*entities.AudioArtifact, error) {
	artifact, err := s.uploadRepo.FindByID(ctx, uploadID)
	if err != nil {
		if errors.Is(err, entities.ErrUploadNotFound) {
			return nil, usecaseErrors.ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to find upload: %w", err)
	}
	return artifact, nil
}
