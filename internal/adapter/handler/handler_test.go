package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-insights/internal/usecase/ai"
	meetingUsecase "github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"
)

// stubAI is a programmable aiuse.Service
type stubAI struct {
	transcript entities.Transcript
	transcribe error
	translated string
	translate  error
	summary    string
	summarize  error
	native     string
	nativeErr  error
	moderation entities.ModerationResult
	moderate   error
	record     entities.AnalysisRecord
	actions    error
	analysis   *entities.MeetingAnalysis
	analyze    error

	gotAudio string
}

func (s *stubAI) Transcribe(_ context.Context, audio aiuse.AudioInput) (entities.Transcript, error) {
	if audio.Body != nil {
		b, _ := io.ReadAll(audio.Body)
		s.gotAudio = string(b)
	}
	return s.transcript, s.transcribe
}

func (s *stubAI) Translate(context.Context, string, string) (string, error) {
	return s.translated, s.translate
}

func (s *stubAI) SummarizeEnglish(context.Context, string) (string, error) {
	return s.summary, s.summarize
}

func (s *stubAI) SummarizeNative(context.Context, string, string) (string, error) {
	return s.native, s.nativeErr
}

func (s *stubAI) Moderate(context.Context, string) (entities.ModerationResult, error) {
	return s.moderation, s.moderate
}

func (s *stubAI) ExtractActions(context.Context, string) (entities.AnalysisRecord, error) {
	return s.record, s.actions
}

func (s *stubAI) Analyze(context.Context, aiuse.AudioInput) (*entities.MeetingAnalysis, error) {
	return s.analysis, s.analyze
}

type envelope struct {
	Status  string            `json:"status"`
	Data    json.RawMessage   `json:"data"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func newServer(t *testing.T, ai aiuse.Service) *echo.Echo {
	t.Helper()

	kv := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { _ = kv.Close() })
	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	meetings := meetingUsecase.NewMeetingService(
		repository.NewMeetingRepository(kv),
		repository.NewUploadRepository(kv),
		blobs,
		time.Hour,
		1<<20,
		nil,
	)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = ErrorHandler(nil)
	NewRouter(nil,
		NewMeetingHandler(meetings, ai, time.Hour, 1<<20, nil),
		NewAIController(ai, nil),
	).Setup(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return serve(t, e, req)
}

func doUpload(t *testing.T, e *echo.Echo, path, contentType, content string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="standup.mp3"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return serve(t, e, req)
}

func serve(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestHealth(t *testing.T) {
	e := newServer(t, &stubAI{})

	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","version":"v1"}`, rec.Body.String())
	}
}

func TestMeetingsCatalogue(t *testing.T) {
	e := newServer(t, &stubAI{})

	rec, env := doJSON(t, e, http.MethodPost, "/api/v1/meetings?title=Retro", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		MeetingType string `json:"meeting_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Retro", created.Title)
	assert.Equal(t, "upload", created.MeetingType)

	rec, env = doJSON(t, e, http.MethodGet, "/api/v1/meetings/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)

	rec, env = doJSON(t, e, http.MethodGet, "/api/v1/meetings", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	rec, env = doJSON(t, e, http.MethodGet, "/api/v1/meetings/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", env.Code)

	rec, env = doJSON(t, e, http.MethodGet, "/api/v1/meetings/7a4f3c6e-8a51-4d43-9a66-2f5f0b0b7c11", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestUploadAndTranscribe(t *testing.T) {
	ai := &stubAI{transcript: entities.Transcript{LanguageCode: "es", LanguageName: "Spanish", NativeText: "Hola"}}
	e := newServer(t, ai)

	rec, env := doUpload(t, e, "/api/v1/meetings/upload", "audio/mpeg", "fake-mp3")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var up struct {
		Status   string `json:"status"`
		UploadID string `json:"upload_id"`
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &up))
	assert.Equal(t, "received", up.Status)
	assert.Equal(t, "standup.mp3", up.Filename)
	assert.Equal(t, int64(8), up.Size)

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/meetings/transcribe", `{"upload_id":"`+up.UploadID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "fake-mp3", ai.gotAudio)
	assert.JSONEq(t,
		`{"upload_id":"`+up.UploadID+`","language_code":"es","language_name":"Spanish","text":"Hola"}`,
		string(env.Data))

	rec, env = doJSON(t, e, http.MethodDelete, "/api/v1/meetings/upload/"+up.UploadID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/meetings/transcribe", `{"upload_id":"`+up.UploadID+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UPLOAD_NOT_FOUND", env.Code)
	assert.Equal(t, up.UploadID, env.Details["upload_id"])
}

func TestUploadRejections(t *testing.T) {
	e := newServer(t, &stubAI{})

	rec, env := doUpload(t, e, "/api/v1/meetings/upload", "text/plain", "hello")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "UPLOAD_UNSUPPORTED_MEDIA", env.Code)
	assert.Equal(t, "text/plain", env.Details["content_type"])

	rec, env = doUpload(t, e, "/api/v1/meetings/upload", "audio/wav", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UPLOAD_MISSING_FILE", env.Code)

	rec, env = doUpload(t, e, "/api/v1/meetings/upload", "audio/wav", strings.Repeat("a", 1<<20+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "UPLOAD_TOO_LARGE", env.Code)

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/meetings/upload", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UPLOAD_MISSING_FILE", env.Code)

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/meetings/transcribe", `{"upload_id":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", env.Code)
}

func TestProcessTranscript(t *testing.T) {
	ai := &stubAI{record: entities.AnalysisRecord{
		Summary: "Frontend due today.",
		Actions: []entities.ActionItem{{Assignee: "Rahul", Text: "finish the frontend by EOD"}},
		Moderation: entities.MeetingModeration{
			Notes: []string{},
		},
	}}
	e := newServer(t, ai)

	rec, env := doJSON(t, e, http.MethodPost, "/api/v1/meetings/process", `{"transcript":"Rahul will finish the frontend by EOD."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"summary":"Frontend due today.",
		"actions":[{"assignee":"Rahul","text":"finish the frontend by EOD"}],
		"moderation":{"interruptions":0,"notes":[]},
		"warnings":[]
	}`, string(env.Data))

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/meetings/process", `{"transcript":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "AI_EMPTY_TEXT", env.Code)
	assert.Equal(t, "transcript", env.Details["field"])
}

func TestStageErrorMapping(t *testing.T) {
	missing := &aiuse.PreconditionError{Reason: "generation service credential", Err: aiuse.ErrMissingCredential}
	empty := &aiuse.PreconditionError{Reason: "text", Err: aiuse.ErrEmptyText}
	failed := &aiuse.UpstreamError{Stage: aiuse.StageSummarize, Err: errors.New("503")}

	tests := []struct {
		name   string
		ai     *stubAI
		path   string
		body   string
		status int
		code   string
	}{
		{"missing credential", &stubAI{summarize: missing}, "/api/v1/summarize", `{"text":"x"}`, http.StatusInternalServerError, "AI_MISSING_CREDENTIAL"},
		{"empty text", &stubAI{moderate: empty}, "/api/v1/moderate", `{"text":""}`, http.StatusBadRequest, "AI_EMPTY_TEXT"},
		{"summary upstream", &stubAI{summarize: failed}, "/api/v1/summarize", `{"text":"x"}`, http.StatusBadGateway, "AI_SUMMARY_FAILED"},
		{"bad language tag", &stubAI{}, "/api/v1/translate", `{"text":"x","source_lang":"<script>"}`, http.StatusBadRequest, "VALIDATION"},
		{"bad json", &stubAI{}, "/api/v1/actions", `{"transcript":`, http.StatusBadRequest, "INVALID_PAYLOAD"},
		{"unexpected", &stubAI{actions: errors.New("disk on fire")}, "/api/v1/actions", `{"transcript":"x"}`, http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newServer(t, tt.ai)

			rec, env := doJSON(t, e, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, tt.code, env.Code)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}

func TestDegradedStagesReturnWarnings(t *testing.T) {
	upstream := &aiuse.UpstreamError{Stage: aiuse.StageTranslate, Err: errors.New("timeout")}
	ai := &stubAI{
		translate:  upstream,
		summary:    "Budget approved",
		nativeErr:  &aiuse.UpstreamError{Stage: aiuse.StageSummarizeNative, Err: errors.New("timeout")},
		moderation: entities.NewModerationResult("Moderation unavailable"),
		moderate:   &aiuse.UpstreamError{Stage: aiuse.StageModerate, Err: errors.New("timeout")},
	}
	e := newServer(t, ai)

	rec, env := doJSON(t, e, http.MethodPost, "/api/v1/translate", `{"text":"Hola","source_lang":"es"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"","warnings":["translation_unavailable"]}`, string(env.Data))

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/summarize", `{"text":"We approved the budget","target_lang":"es"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary_en":"Budget approved","summary_native":"","warnings":["summary_native_unavailable"]}`, string(env.Data))

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/summarize", `{"text":"We approved the budget","target_lang":"English"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary_en":"Budget approved","summary_native":"Budget approved","warnings":[]}`, string(env.Data))

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/moderate", `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_flagged":false,"categories":{},"notes":["Moderation unavailable"],"warnings":["moderation_unavailable"]}`, string(env.Data))
}

func TestTranscribeAndAnalyze(t *testing.T) {
	ai := &stubAI{
		transcript: entities.Transcript{LanguageCode: "en", LanguageName: "English", NativeText: "Hello"},
		analysis: &entities.MeetingAnalysis{
			LanguageCode: "en",
			Analysis:     entities.AnalysisRecord{Actions: []entities.ActionItem{}},
			Warnings:     []string{},
		},
	}
	e := newServer(t, ai)

	rec, env := doUpload(t, e, "/api/v1/transcribe", "audio/mpeg", "bytes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"language_code":"en","language_name":"English","text":"Hello"}`, string(env.Data))
	assert.Equal(t, "bytes", ai.gotAudio)

	rec, env = doUpload(t, e, "/api/v1/analyze", "audio/mpeg", "bytes")
	require.Equal(t, http.StatusOK, rec.Code)
	var got entities.MeetingAnalysis
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "en", got.LanguageCode)

	ai.analyze = &aiuse.UpstreamError{Stage: aiuse.StageTranscribe, Err: errors.New("bad audio")}
	rec, env = doUpload(t, e, "/api/v1/analyze", "audio/mpeg", "bytes")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "AI_TRANSCRIPTION_FAILED", env.Code)

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/analyze", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UPLOAD_MISSING_FILE", env.Code)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	e := newServer(t, &stubAI{})

	rec, env := doJSON(t, e, http.MethodGet, "/api/v1/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "NOT_FOUND", env.Code)
}
