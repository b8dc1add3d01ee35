package ai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// AssemblyAITranscriber transcribes audio through the official AssemblyAI SDK.
// It is selected with TRANSCRIBER=assemblyai.
type AssemblyAITranscriber struct {
	apiKey string
	client *aai.Client
}

// NewAssemblyAITranscriber creates a transcriber using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAITranscriber(cfg *config.AssemblyConfig, opts ...aai.ClientOption) *AssemblyAITranscriber {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	opts = append([]aai.ClientOption{aai.WithAPIKey(apiKey)}, opts...)
	return &AssemblyAITranscriber{
		apiKey: apiKey,
		client: aai.NewClientWithOptions(opts...),
	}
}

// Configured reports whether the transcriber has a credential
func (t *AssemblyAITranscriber) Configured() bool {
	return t != nil && t.apiKey != ""
}

// TranscribeFile uploads the file at path, waits for the transcript and
// returns its text together with the detected language code
func (t *AssemblyAITranscriber) TranscribeFile(ctx context.Context, path string) (TranscriptionResult, error) {
	if !t.Configured() {
		return TranscriptionResult{}, ErrMissingAPIKey
	}

	f, err := os.Open(path)
	if err != nil {
		return TranscriptionResult{}, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	params := &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
	}

	transcript, err := t.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return TranscriptionResult{}, fmt.Errorf("assemblyai transcription: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return TranscriptionResult{}, fmt.Errorf("assemblyai error: %s", msg)
	}

	return TranscriptionResult{
		Text:     aai.ToString(transcript.Text),
		Language: string(transcript.LanguageCode),
	}, nil
}
