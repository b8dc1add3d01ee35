package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestToMeetingListResponse(t *testing.T) {
	assert.NotNil(t, ToMeetingListResponse(nil))
	assert.Empty(t, ToMeetingListResponse(nil))

	m := entities.NewMeeting("Retro", "")
	got := ToMeetingListResponse([]*entities.Meeting{m})
	if assert.Len(t, got, 1) {
		assert.Equal(t, m.ID, got[0].ID)
		assert.Equal(t, "Retro", got[0].Title)
		assert.Equal(t, "upload", got[0].MeetingType)
	}
}

func TestToUploadResponse(t *testing.T) {
	a := entities.NewAudioArtifact("a.wav", "audio/wav", 10)

	got := ToUploadResponse(a, time.Hour)

	assert.Equal(t, "received", got.Status)
	assert.Equal(t, a.ID, got.UploadID)
	assert.Equal(t, a.UploadedAt.Add(time.Hour), got.ExpiresAt)
	assert.Nil(t, ToUploadResponse(nil, time.Hour))
}
