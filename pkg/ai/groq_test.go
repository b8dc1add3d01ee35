package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

func TestGenerate_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "test-model" || payload.MaxTokens != 300 || len(payload.Messages) != 2 {
			t.Fatalf("unexpected request %+v", payload)
		}
		if payload.Messages[0].Role != "system" || payload.Messages[1].Content != "hello" {
			t.Fatalf("unexpected messages %+v", payload.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]string{"content": "  hi there \n"}}},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL + "/", ChatModel: "test-model"})

	out, err := client.Generate(context.Background(), "be brief", "hello", 0, 300)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "hi there" {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestGenerate_TemperatureZeroIsSent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		json.NewDecoder(r.Body).Decode(&raw)
		if _, ok := raw["temperature"]; !ok {
			t.Fatalf("temperature missing from payload")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]string{"content": "{}"}}},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL})
	if _, err := client.Generate(context.Background(), "", "x", 0, 10); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
}

func TestGenerate_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":"rate limited"}`)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL})
	_, err := client.Generate(context.Background(), "", "x", 0.2, 10)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
}

func TestGenerate_MissingKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	client := NewGroqClient(&config.GroqConfig{BaseURL: "http://127.0.0.1:1"})

	if client.Configured() {
		t.Fatalf("client without key reported configured")
	}
	if _, err := client.Generate(context.Background(), "", "x", 0, 10); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestTranscribeFile_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("invalid multipart: %v", err)
		}
		if r.FormValue("model") != "whisper-large-v3" || r.FormValue("response_format") != "verbose_json" {
			t.Fatalf("unexpected form %v", r.MultipartForm.Value)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file: %v", err)
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		if string(body) != "RIFFfake" || header.Filename != "clip.wav" {
			t.Fatalf("unexpected upload %q %q", header.Filename, body)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": " Hola a todos ", "language": "spanish"})
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, []byte("RIFFfake"), 0o600); err != nil {
		t.Fatal(err)
	}

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL})
	res, err := client.TranscribeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if res.Text != "Hola a todos" || res.Language != "spanish" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestAssemblyAITranscriber_MissingKey(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	tr := NewAssemblyAITranscriber(&config.AssemblyConfig{})

	if tr.Configured() {
		t.Fatalf("transcriber without key reported configured")
	}
	if _, err := tr.TranscribeFile(context.Background(), "missing.wav"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
