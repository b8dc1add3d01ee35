package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
)

const meetingKeyPrefix = "meeting:"

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	store cache.Store
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(store cache.Store) repositories.MeetingRepository {
	return &meetingRepository{store: store}
}

// Create stores a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	b, err := json.Marshal(meeting)
	if err != nil {
		return fmt.Errorf("failed to encode meeting: %w", err)
	}
	return r.store.Set(ctx, meetingKeyPrefix+meeting.ID.String(), string(b), 0)
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	raw, ok, err := r.store.Get(ctx, meetingKeyPrefix+id.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}

	var meeting entities.Meeting
	if err := json.Unmarshal([]byte(raw), &meeting); err != nil {
		return nil, fmt.Errorf("failed to decode meeting: %w", err)
	}
	return &meeting, nil
}

// List returns all meetings ordered by creation time
func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	keys, err := r.store.Keys(ctx, meetingKeyPrefix)
	if err != nil {
		return nil, err
	}

	meetings := make([]*entities.Meeting, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var meeting entities.Meeting
		if err := json.Unmarshal([]byte(raw), &meeting); err != nil {
			return nil, fmt.Errorf("failed to decode meeting %s: %w", key, err)
		}
		meetings = append(meetings, &meeting)
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].CreatedAt.Before(meetings[j].CreatedAt)
	})
	return meetings, nil
}
