package ai

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	pkgai "github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/jobcontext"
	"github.com/johnquangdev/meeting-insights/pkg/langdetect"
)

// Pipeline stage names, used in logs, metrics and UpstreamError
const (
	StageTranscribe      = "transcribe"
	StageTranslate       = "translate"
	StageSummarize       = "summarize_en"
	StageSummarizeNative = "summarize_native"
	StageModerate        = "moderate"
	StageActions         = "actions"
)

// Warnings reported by Analyze when a stage fell back to its default
const (
	WarnTranslationUnavailable   = "translation_unavailable"
	WarnNativeSummaryUnavailable = "summary_native_unavailable"
	WarnModerationUnavailable    = "moderation_unavailable"
	WarnActionsModelUnavailable  = "actions_model_unavailable"
)

const noteModerationUnavailable = "Moderation unavailable"

var translationLabel = regexp.MustCompile(`(?i)^\s*translation\s*:\s*`)

// Transcriber turns a staged audio file into text
type Transcriber interface {
	Configured() bool
	TranscribeFile(ctx context.Context, path string) (pkgai.TranscriptionResult, error)
}

// Generator runs chat-style prompts against a language model
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

// LanguageDetector is the local fallback when the transcriber reports no language
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

// AudioInput is one uploaded audio byte stream
type AudioInput struct {
	Filename string
	Body     io.Reader
}

// Service drives the transcript-to-insight pipeline.
//
// Stages that degrade (Translate, SummarizeNative, Moderate, ExtractActions)
// return their documented default together with an *UpstreamError; callers
// check IsDegraded and carry on. Transcribe and SummarizeEnglish failures are terminal.
type Service interface {
	Transcribe(ctx context.Context, audio AudioInput) (entities.Transcript, error)
	Translate(ctx context.Context, text, sourceLang string) (string, error)
	SummarizeEnglish(ctx context.Context, text string) (string, error)
	SummarizeNative(ctx context.Context, summaryEN, targetLang string) (string, error)
	Moderate(ctx context.Context, text string) (entities.ModerationResult, error)
	ExtractActions(ctx context.Context, transcript string) (entities.AnalysisRecord, error)
	Analyze(ctx context.Context, audio AudioInput) (*entities.MeetingAnalysis, error)
}

type aiService struct {
	transcriber Transcriber
	generator   Generator
	detector    LanguageDetector
	parser      *Parser
	extractor   *PatternExtractor
	timeout     time.Duration
	logger      *zap.Logger
}

// NewAIService constructs a new AI service. detector may be nil, in which case
// transcripts without a reported language are marked unknown.
func NewAIService(
	transcriber Transcriber,
	generator Generator,
	detector LanguageDetector,
	timeout time.Duration,
	logger *zap.Logger,
) Service {
	return &aiService{
		transcriber: transcriber,
		generator:   generator,
		detector:    detector,
		parser:      NewParser(),
		extractor:   NewPatternExtractor(),
		timeout:     timeout,
		logger:      logger,
	}
}

// Transcribe stages the audio to a temporary file for the duration of the call
// and resolves the transcript language
func (s *aiService) Transcribe(ctx context.Context, audio AudioInput) (entities.Transcript, error) {
	if s.transcriber == nil || !s.transcriber.Configured() {
		return entities.Transcript{}, missingCredential("transcription service credential")
	}
	if audio.Body == nil {
		return entities.Transcript{}, &PreconditionError{Reason: "audio", Err: ErrEmptyAudio}
	}

	ctx, cancel := s.begin(ctx, StageTranscribe)
	defer cancel()
	ctx = jobcontext.WithStage(ctx, StageTranscribe)
	start := time.Now()

	path, cleanup, err := storage.StageTemp(audio.Body, audio.Filename)
	if err != nil {
		s.finish(ctx, start, metrics.StatusError, err)
		return entities.Transcript{}, fmt.Errorf("failed to stage audio: %w", err)
	}
	defer cleanup()

	res, err := s.transcriber.TranscribeFile(ctx, path)
	if err != nil {
		s.finish(ctx, start, metrics.StatusError, err)
		return entities.Transcript{}, &UpstreamError{Stage: StageTranscribe, Err: err}
	}

	code := s.resolveLanguage(res)
	transcript := entities.Transcript{
		LanguageCode: code,
		LanguageName: langdetect.DisplayName(code),
		NativeText:   res.Text,
	}

	s.finish(ctx, start, metrics.StatusSuccess, nil,
		zap.String("language", code),
		zap.Int("chars", len(res.Text)),
	)
	return transcript, nil
}

// resolveLanguage prefers the service-reported language, then local detection
func (s *aiService) resolveLanguage(res pkgai.TranscriptionResult) string {
	if code, ok := langdetect.Normalize(res.Language); ok {
		return code
	}
	if s.detector != nil {
		if code, ok := s.detector.Detect(res.Text); ok {
			return code
		}
	}
	return entities.LanguageUnknown
}

// Translate renders text in English. English sources are returned unchanged
// without an external call.
func (s *aiService) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	return s.translate(ctx, StageTranslate, text, sourceLang, "en")
}

// SummarizeEnglish summarizes English text. Empty text is a precondition failure.
func (s *aiService) SummarizeEnglish(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", emptyText("text")
	}
	if !s.generatorReady() {
		return "", missingCredential("generation service credential")
	}

	ctx, cancel := s.begin(ctx, StageSummarize)
	defer cancel()
	ctx = jobcontext.WithStage(ctx, StageSummarize)
	start := time.Now()

	out, err := s.generator.Generate(ctx, summarizeSystemPrompt, summarizePrompt(text), summarizeTemperature, summarizeMaxTokens)
	if err != nil {
		s.finish(ctx, start, metrics.StatusError, err)
		return "", &UpstreamError{Stage: StageSummarize, Err: err}
	}

	s.finish(ctx, start, metrics.StatusSuccess, nil)
	return strings.TrimSpace(out), nil
}

// SummarizeNative translates an English summary back into targetLang with the
// same contract as Translate. English or unknown targets return the summary unchanged.
func (s *aiService) SummarizeNative(ctx context.Context, summaryEN, targetLang string) (string, error) {
	return s.translate(ctx, StageSummarizeNative, summaryEN, "en", targetLang)
}

func (s *aiService) translate(ctx context.Context, stage, text, from, to string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if isSameLanguage(from, to) {
		return text, nil
	}
	if _, ok := langdetect.Normalize(to); !ok {
		// nothing to localize into
		return text, nil
	}
	if !s.generatorReady() {
		return "", missingCredential("generation service credential")
	}

	ctx, cancel := s.begin(ctx, stage)
	defer cancel()
	ctx = jobcontext.WithStage(ctx, stage)
	start := time.Now()

	out, err := s.generator.Generate(ctx,
		translateSystemPrompt,
		translatePrompt(languageLabel(from), languageLabel(to), text),
		translateTemperature, translateMaxTokens,
	)
	if err != nil {
		s.finish(ctx, start, metrics.StatusDegraded, err)
		return "", &UpstreamError{Stage: stage, Err: err}
	}

	s.finish(ctx, start, metrics.StatusSuccess, nil)
	return strings.TrimSpace(translationLabel.ReplaceAllString(strings.TrimSpace(out), "")), nil
}

// Moderate classifies text. Unparsable model output yields the "Invalid JSON response"
// default; a failed call yields the "Moderation unavailable" default and an UpstreamError.
func (s *aiService) Moderate(ctx context.Context, text string) (entities.ModerationResult, error) {
	if strings.TrimSpace(text) == "" {
		return entities.ModerationResult{}, emptyText("text")
	}
	if !s.generatorReady() {
		return entities.ModerationResult{}, missingCredential("generation service credential")
	}

	ctx, cancel := s.begin(ctx, StageModerate)
	defer cancel()
	ctx = jobcontext.WithStage(ctx, StageModerate)
	start := time.Now()

	out, err := s.generator.Generate(ctx, moderateSystemPrompt, moderatePrompt(text), moderateTemperature, moderateMaxTokens)
	if err != nil {
		s.finish(ctx, start, metrics.StatusDegraded, err)
		return entities.NewModerationResult(noteModerationUnavailable), &UpstreamError{Stage: StageModerate, Err: err}
	}

	result := s.parser.Moderation(out)
	s.finish(ctx, start, metrics.StatusSuccess, nil, zap.Bool("flagged", result.IsFlagged))
	return result, nil
}

// ExtractActions asks the model for summary, actions and meeting moderation.
// When the model yields no actions, or the call fails, the rule-based extractor
// runs over the transcript. Actions are never nil.
func (s *aiService) ExtractActions(ctx context.Context, transcript string) (entities.AnalysisRecord, error) {
	if strings.TrimSpace(transcript) == "" {
		return entities.AnalysisRecord{}, emptyText("transcript")
	}
	if !s.generatorReady() {
		return entities.AnalysisRecord{}, missingCredential("generation service credential")
	}

	ctx, cancel := s.begin(ctx, StageActions)
	defer cancel()
	ctx = jobcontext.WithStage(ctx, StageActions)
	start := time.Now()

	var upstreamErr error
	raw, err := s.generator.Generate(ctx, analyzeSystemPrompt, analyzePrompt(transcript), analyzeTemperature, analyzeMaxTokens)
	if err != nil {
		upstreamErr = &UpstreamError{Stage: StageActions, Err: err}
		raw = ""
	}

	record := s.parser.Analysis(raw)
	if len(record.Actions) == 0 {
		record.Actions = s.extractor.Extract(transcript)
		metrics.RecordFallbackExtraction()
		s.logInfo(ctx, "🔁 Using rule-based action extraction", zap.Int("actions", len(record.Actions)))
	}
	record.Actions = s.parser.TrimActions(record.Actions)
	if record.Summary == "" {
		record.Summary = DefaultBrief
	}

	if upstreamErr != nil {
		s.finish(ctx, start, metrics.StatusDegraded, err)
		return record, upstreamErr
	}
	s.finish(ctx, start, metrics.StatusSuccess, nil, zap.Int("actions", len(record.Actions)))
	return record, nil
}

// Analyze runs the full chain over one audio file. After translation the English
// summary (followed by its native translation), moderation and action extraction
// run concurrently. Only transcription and English summarization failures abort.
func (s *aiService) Analyze(ctx context.Context, audio AudioInput) (*entities.MeetingAnalysis, error) {
	if s.transcriber == nil || !s.transcriber.Configured() {
		return nil, missingCredential("transcription service credential")
	}
	if !s.generatorReady() {
		return nil, missingCredential("generation service credential")
	}

	ctx, cancel := s.begin(ctx, "analyze")
	defer cancel()

	transcript, err := s.Transcribe(ctx, audio)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		warnings = []string{}
	)
	warn := func(w string) {
		mu.Lock()
		defer mu.Unlock()
		warnings = append(warnings, w)
	}

	textEN, err := s.Translate(ctx, transcript.NativeText, transcript.LanguageCode)
	if textEN == "" && !transcript.IsEmpty() {
		// keep downstream stages running on the source text
		textEN = transcript.NativeText
		warn(WarnTranslationUnavailable)
	} else if err != nil {
		return nil, err
	}

	result := &entities.MeetingAnalysis{
		LanguageCode:     transcript.LanguageCode,
		LanguageName:     transcript.LanguageName,
		TranscriptNative: transcript.NativeText,
		TranscriptEN:     textEN,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summaryEN, err := s.SummarizeEnglish(gctx, textEN)
		if err != nil {
			return err
		}
		result.SummaryEN = summaryEN

		native, err := s.SummarizeNative(gctx, summaryEN, transcript.LanguageCode)
		if err != nil {
			warn(WarnNativeSummaryUnavailable)
		}
		result.SummaryNative = native
		return nil
	})

	g.Go(func() error {
		moderation, err := s.Moderate(gctx, textEN)
		if err != nil {
			if !IsDegraded(err) {
				return err
			}
			warn(WarnModerationUnavailable)
		}
		result.Moderation = moderation
		return nil
	})

	g.Go(func() error {
		record, err := s.ExtractActions(gctx, textEN)
		if err != nil {
			if !IsDegraded(err) {
				return err
			}
			warn(WarnActionsModelUnavailable)
		}
		result.Analysis = record
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logError(ctx, "❌ Analysis failed", err)
		return nil, err
	}

	sort.Strings(warnings)
	result.Warnings = warnings

	s.logInfo(ctx, "✅ Analysis completed",
		zap.String("language", result.LanguageCode),
		zap.Int("actions", len(result.Analysis.Actions)),
		zap.Strings("warnings", warnings),
	)
	return result, nil
}

func (s *aiService) generatorReady() bool {
	return s.generator != nil && s.generator.Configured()
}

// begin attaches pipeline job metadata unless the caller already did
func (s *aiService) begin(ctx context.Context, flow string) (context.Context, context.CancelFunc) {
	if _, ok := jobcontext.GetJobID(ctx); ok {
		return ctx, func() {}
	}
	return jobcontext.JobBegin(ctx, flow, s.timeout)
}

// finish records stage metrics and logs its outcome
func (s *aiService) finish(ctx context.Context, start time.Time, status string, err error, fields ...zap.Field) {
	stage, _ := jobcontext.GetStage(ctx)
	elapsed := time.Since(start)
	metrics.RecordStage(stage, status, elapsed)

	fields = append(fields, zap.Duration("duration", elapsed))
	switch status {
	case metrics.StatusSuccess:
		s.logInfo(ctx, "✅ Stage completed", fields...)
	case metrics.StatusDegraded:
		s.logWarn(ctx, "⚠️ Stage degraded to default", append(fields, zap.Error(err))...)
	default:
		s.logError(ctx, "❌ Stage failed", err, fields...)
	}
}

func (s *aiService) logInfo(ctx context.Context, msg string, fields ...zap.Field) {
	if s.logger != nil {
		s.logger.Info(msg, append(jobcontext.Fields(ctx), fields...)...)
	}
}

func (s *aiService) logWarn(ctx context.Context, msg string, fields ...zap.Field) {
	if s.logger != nil {
		s.logger.Warn(msg, append(jobcontext.Fields(ctx), fields...)...)
	}
}

func (s *aiService) logError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if s.logger != nil {
		fields = append(fields, zap.Error(err))
		s.logger.Error(msg, append(jobcontext.Fields(ctx), fields...)...)
	}
}

// languageLabel renders a code or name for use in a prompt
func languageLabel(label string) string {
	if code, ok := langdetect.Normalize(label); ok {
		return langdetect.DisplayName(code)
	}
	return "the source language"
}

func isSameLanguage(a, b string) bool {
	ca, okA := langdetect.Normalize(a)
	cb, okB := langdetect.Normalize(b)
	return okA && okB && ca == cb
}
