package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	aidto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/ai"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	aiuse "github.com/johnquangdev/meeting-insights/internal/usecase/ai"
	"github.com/johnquangdev/meeting-insights/pkg/langdetect"
)

// AIController exposes each pipeline stage, and the full chain, over HTTP
type AIController struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, logger: logger}
}

// Transcribe handles POST /transcribe
// @Summary      Transcribe audio
// @Description  Transcribes an audio file and detects its language
// @Tags         AI
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio file"
// @Success      200  {object}  common.SuccessResponse{data=ai.TranscriptResponse}
// @Failure      400  {object}  common.ErrorResponse  "File missing"
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Failure      502  {object}  common.ErrorResponse  "Transcription failed"
// @Router       /transcribe [post]
func (ac *AIController) Transcribe(c echo.Context) error {
	audio, closeAudio, err := ac.openAudio(c)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	defer closeAudio()

	transcript, err := ac.svc.Transcribe(c.Request().Context(), audio)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, presenter.ToTranscriptResponse(transcript))
}

// Translate handles POST /translate
// @Summary      Translate to English
// @Description  Renders text in English. English input is returned unchanged. When the service is unavailable the text is empty and warnings lists translation_unavailable.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      ai.TranslateRequest  true  "Text and source language"
// @Success      200  {object}  common.SuccessResponse{data=ai.TranslateResponse}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Router       /translate [post]
func (ac *AIController) Translate(c echo.Context) error {
	var req aidto.TranslateRequest
	if err := ac.bind(c, &req); err != nil {
		return HandleError(ac.logger, c, err)
	}

	text, err := ac.svc.Translate(c.Request().Context(), req.Text, req.SourceLang)
	warnings, err := degraded(err, aiuse.WarnTranslationUnavailable)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, aidto.TranslateResponse{Text: text, Warnings: warnings})
}

// Summarize handles POST /summarize
// @Summary      Summarize text
// @Description  Summarizes English text. With a non-English target_lang the summary is also translated into that language.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      ai.SummarizeRequest  true  "Text and optional target language"
// @Success      200  {object}  common.SuccessResponse{data=ai.SummarizeResponse}
// @Failure      400  {object}  common.ErrorResponse  "Text is required"
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Failure      502  {object}  common.ErrorResponse  "Summary failed"
// @Router       /summarize [post]
func (ac *AIController) Summarize(c echo.Context) error {
	var req aidto.SummarizeRequest
	if err := ac.bind(c, &req); err != nil {
		return HandleError(ac.logger, c, err)
	}

	ctx := c.Request().Context()
	summaryEN, err := ac.svc.SummarizeEnglish(ctx, req.Text)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	resp := aidto.SummarizeResponse{SummaryEN: summaryEN, SummaryNative: summaryEN, Warnings: []string{}}
	if target := strings.TrimSpace(req.TargetLang); target != "" && !langdetect.IsEnglish(target) {
		native, err := ac.svc.SummarizeNative(ctx, summaryEN, target)
		warnings, err := degraded(err, aiuse.WarnNativeSummaryUnavailable)
		if err != nil {
			return HandleError(ac.logger, c, err)
		}
		resp.SummaryNative = native
		resp.Warnings = warnings
	}
	return HandleSuccess(ac.logger, c, resp)
}

// Moderate handles POST /moderate
// @Summary      Moderate text
// @Description  Classifies text into hate, violence, sexual and self_harm categories
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      ai.ModerateRequest  true  "Text"
// @Success      200  {object}  common.SuccessResponse{data=ai.ModerateResponse}
// @Failure      400  {object}  common.ErrorResponse  "Text is required"
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Router       /moderate [post]
func (ac *AIController) Moderate(c echo.Context) error {
	var req aidto.ModerateRequest
	if err := ac.bind(c, &req); err != nil {
		return HandleError(ac.logger, c, err)
	}

	result, err := ac.svc.Moderate(c.Request().Context(), req.Text)
	warnings, err := degraded(err, aiuse.WarnModerationUnavailable)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, aidto.ModerateResponse{ModerationResult: result, Warnings: warnings})
}

// Actions handles POST /actions
// @Summary      Extract actions
// @Description  Returns a short summary, assigned actions and meeting moderation notes for a transcript
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      ai.ActionsRequest  true  "Transcript"
// @Success      200  {object}  common.SuccessResponse{data=ai.ActionsResponse}
// @Failure      400  {object}  common.ErrorResponse  "Transcript is required"
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Router       /actions [post]
func (ac *AIController) Actions(c echo.Context) error {
	var req aidto.ActionsRequest
	if err := ac.bind(c, &req); err != nil {
		return HandleError(ac.logger, c, err)
	}
	return extractActions(ac.logger, ac.svc, c, req.Transcript)
}

// Analyze handles POST /analyze
// @Summary      Analyze a meeting recording
// @Description  Runs transcription, translation, summaries, moderation and action extraction over one audio file. Stages that fell back to defaults are listed in warnings.
// @Tags         AI
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio file"
// @Success      200  {object}  common.SuccessResponse{data=entities.MeetingAnalysis}
// @Failure      400  {object}  common.ErrorResponse
// @Failure      500  {object}  common.ErrorResponse  "Credential not set"
// @Failure      502  {object}  common.ErrorResponse  "Transcription or summary failed"
// @Router       /analyze [post]
func (ac *AIController) Analyze(c echo.Context) error {
	audio, closeAudio, err := ac.openAudio(c)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	defer closeAudio()

	analysis, err := ac.svc.Analyze(c.Request().Context(), audio)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, analysis)
}

func (ac *AIController) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	return c.Validate(req)
}

func (ac *AIController) openAudio(c echo.Context) (aiuse.AudioInput, func(), error) {
	fh, err := formAudio(c)
	if err != nil {
		return aiuse.AudioInput{}, nil, err
	}
	src, err := fh.Open()
	if err != nil {
		return aiuse.AudioInput{}, nil, errors.ErrInvalidPayload()
	}
	return aiuse.AudioInput{Filename: fh.Filename, Body: src}, func() { _ = src.Close() }, nil
}

// extractActions is shared by /actions and /meetings/process
func extractActions(logger *zap.Logger, svc aiuse.Service, c echo.Context, transcript string) error {
	record, err := svc.ExtractActions(c.Request().Context(), transcript)
	warnings, err := degraded(err, aiuse.WarnActionsModelUnavailable)
	if err != nil {
		return HandleError(logger, c, err)
	}
	return HandleSuccess(logger, c, aidto.ActionsResponse{AnalysisRecord: record, Warnings: warnings})
}

// degraded turns a stage fallback into a warning; any other error is returned
func degraded(err error, warning string) ([]string, error) {
	if err == nil {
		return []string{}, nil
	}
	if aiuse.IsDegraded(err) {
		return []string{warning}, nil
	}
	return nil, err
}
