package ai

import "github.com/johnquangdev/meeting-insights/internal/domain/entities"

// TranscriptResponse is returned by the transcription endpoint
type TranscriptResponse struct {
	LanguageCode string `json:"language_code" example:"es"`
	LanguageName string `json:"language_name" example:"Spanish"`
	Text         string `json:"text"`
}

// TranslateResponse carries the English text. Warnings lists degraded stages.
type TranslateResponse struct {
	Text     string   `json:"text"`
	Warnings []string `json:"warnings"`
}

// SummarizeResponse carries both summaries; SummaryNative equals SummaryEN
// when no translation was needed
type SummarizeResponse struct {
	SummaryEN     string   `json:"summary_en"`
	SummaryNative string   `json:"summary_native"`
	Warnings      []string `json:"warnings"`
}

// ModerateResponse wraps a moderation verdict
type ModerateResponse struct {
	entities.ModerationResult
	Warnings []string `json:"warnings"`
}

// ActionsResponse wraps an analysis record
type ActionsResponse struct {
	entities.AnalysisRecord
	Warnings []string `json:"warnings"`
}
