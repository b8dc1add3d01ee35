package ai

// TranslateRequest asks for an English rendering of text
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang" validate:"langtag"`
}

// SummarizeRequest asks for an English summary, plus a native one when
// TargetLang is set and not English
type SummarizeRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang,omitempty" validate:"langtag"`
}

// ModerateRequest asks for a moderation verdict
type ModerateRequest struct {
	Text string `json:"text"`
}

// ActionsRequest asks for summary, actions and meeting moderation
type ActionsRequest struct {
	Transcript string `json:"transcript"`
}
