package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// ErrMissingAPIKey is returned when a client is used without a credential
var ErrMissingAPIKey = errors.New("api key not configured")

// TranscriptionResult is the text produced by a speech-to-text call and the
// language the service reported, if any
type TranscriptionResult struct {
	Text     string
	Language string
}

// APIError is a non-2xx answer from the Groq API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("groq returned status %d: %s", e.StatusCode, e.Body)
}

// GroqClient is a minimal client for the Groq chat completion and audio transcription endpoints
type GroqClient struct {
	apiKey       string
	baseURL      string
	chatModel    string
	whisperModel string
	client       *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	g := &GroqClient{
		baseURL:      "https://api.groq.com",
		chatModel:    "llama-3.3-70b-versatile",
		whisperModel: "whisper-large-v3",
		client:       &http.Client{Timeout: 60 * time.Second},
	}

	if cfg != nil {
		g.apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			g.baseURL = cfg.BaseURL
		}
		if cfg.ChatModel != "" {
			g.chatModel = cfg.ChatModel
		}
		if cfg.WhisperModel != "" {
			g.whisperModel = cfg.WhisperModel
		}
		if cfg.Timeout > 0 {
			g.client.Timeout = cfg.Timeout
		}
	}
	if g.apiKey == "" {
		g.apiKey = os.Getenv("GROQ_API_KEY")
	}
	g.baseURL = strings.TrimRight(g.baseURL, "/")

	return g
}

// Configured reports whether the client has a credential
func (g *GroqClient) Configured() bool {
	return g != nil && g.apiKey != ""
}

// ChatMessage is one chat-style prompt entry
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends a system and user prompt to the chat endpoint and returns the assistant content
func (g *GroqClient) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	if !g.Configured() {
		return "", ErrMissingAPIKey
	}

	messages := make([]ChatMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: userPrompt})

	reqBody := ChatRequest{
		Model:       g.chatModel,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

type transcriptionResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TranscribeFile uploads the audio file at path to the Whisper endpoint
func (g *GroqClient) TranscribeFile(ctx context.Context, path string) (TranscriptionResult, error) {
	if !g.Configured() {
		return TranscriptionResult{}, ErrMissingAPIKey
	}

	f, err := os.Open(path)
	if err != nil {
		return TranscriptionResult{}, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeTranscriptionForm(mw, f, filepath.Base(path), g.whisperModel))
	}()

	endpoint := g.baseURL + "/openai/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		pr.Close()
		return TranscriptionResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		return TranscriptionResult{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return TranscriptionResult{}, err
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return TranscriptionResult{}, fmt.Errorf("decode transcription response: %w", err)
	}
	return TranscriptionResult{
		Text:     strings.TrimSpace(tr.Text),
		Language: strings.TrimSpace(tr.Language),
	}, nil
}

func writeTranscriptionForm(mw *multipart.Writer, audio io.Reader, filename, model string) error {
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return err
	}
	if err := mw.WriteField("model", model); err != nil {
		return err
	}
	if err := mw.WriteField("response_format", "verbose_json"); err != nil {
		return err
	}
	return mw.Close()
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
