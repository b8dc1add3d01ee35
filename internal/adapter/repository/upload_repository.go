package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
)

const uploadKeyPrefix = "upload:"

type uploadRepository struct {
	store cache.Store
}

// NewUploadRepository creates an upload registry backed by store
func NewUploadRepository(store cache.Store) repositories.UploadRepository {
	return &uploadRepository{store: store}
}

func (r *uploadRepository) Save(ctx context.Context, artifact *entities.AudioArtifact, ttl time.Duration) error {
	b, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to encode upload: %w", err)
	}
	return r.store.Set(ctx, uploadKeyPrefix+artifact.ID, string(b), ttl)
}

func (r *uploadRepository) FindByID(ctx context.Context, id string) (*entities.AudioArtifact, error) {
	raw, ok, err := r.store.Get(ctx, uploadKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrUploadNotFound
	}

	var artifact entities.AudioArtifact
	if err := json.Unmarshal([]byte(raw), &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode upload: %w", err)
	}
	return &artifact, nil
}

func (r *uploadRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, uploadKeyPrefix+id)
}
