package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
)

func TestMeetingRepository(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()
	repo := NewMeetingRepository(store)

	first := entities.NewMeeting("Kickoff", "")
	second := entities.NewMeeting("", "live")
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kickoff", got.Title)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestUploadRepository(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()
	repo := NewUploadRepository(store)

	artifact := entities.NewAudioArtifact("standup.mp3", "audio/mpeg", 42)
	require.NoError(t, repo.Save(ctx, artifact, time.Minute))

	got, err := repo.FindByID(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, artifact.ObjectKey, got.ObjectKey)
	assert.Equal(t, int64(42), got.Size)

	require.NoError(t, repo.Delete(ctx, artifact.ID))
	_, err = repo.FindByID(ctx, artifact.ID)
	assert.ErrorIs(t, err, entities.ErrUploadNotFound)
}

func TestUploadRepository_Expired(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()
	repo := NewUploadRepository(store)

	artifact := entities.NewAudioArtifact("a.wav", "audio/wav", 1)
	require.NoError(t, repo.Save(ctx, artifact, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := repo.FindByID(ctx, artifact.ID)
	assert.ErrorIs(t, err, entities.ErrUploadNotFound)
}
