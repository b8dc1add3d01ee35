package entities

// ActionItem is a task attributed to an assignee. Assignee may be empty.
type ActionItem struct {
	Assignee string `json:"assignee"`
	Text     string `json:"text"`
}

// Moderation categories
const (
	CategoryHate     = "hate"
	CategoryViolence = "violence"
	CategorySexual   = "sexual"
	CategorySelfHarm = "self_harm"
)

// ModerationCategories lists the categories the moderation stage reports on
var ModerationCategories = []string{CategoryHate, CategoryViolence, CategorySexual, CategorySelfHarm}

// ModerationResult is the outcome of the content moderation stage
type ModerationResult struct {
	IsFlagged  bool            `json:"is_flagged"`
	Categories map[string]bool `json:"categories"`
	Notes      []string        `json:"notes"`
}

// NewModerationResult returns an unflagged result carrying notes
func NewModerationResult(notes ...string) ModerationResult {
	if notes == nil {
		notes = []string{}
	}
	return ModerationResult{
		Categories: map[string]bool{},
		Notes:      notes,
	}
}

// MeetingModeration is the meeting-dynamics part of an analysis
type MeetingModeration struct {
	Interruptions int      `json:"interruptions"`
	Notes         []string `json:"notes"`
}

// AnalysisRecord is the output of the action extraction stage.
// Actions is never nil.
type AnalysisRecord struct {
	Summary    string            `json:"summary"`
	Actions    []ActionItem      `json:"actions"`
	Moderation MeetingModeration `json:"moderation"`
}

// MeetingAnalysis is every artifact produced by the full analyze flow
type MeetingAnalysis struct {
	LanguageCode     string           `json:"language_code"`
	LanguageName     string           `json:"language_name"`
	TranscriptNative string           `json:"transcript_native"`
	TranscriptEN     string           `json:"transcript_en"`
	SummaryEN        string           `json:"summary_en"`
	SummaryNative    string           `json:"summary_native"`
	Moderation       ModerationResult `json:"moderation"`
	Analysis         AnalysisRecord   `json:"analysis"`
	Warnings         []string         `json:"warnings"`
}
