package entities

// LanguageUnknown marks a transcript whose language could not be determined
const LanguageUnknown = "unknown"

// Transcript is the output of the transcription stage. Immutable once created.
type Transcript struct {
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name"`
	NativeText   string `json:"native_text"`
}

// IsEmpty reports whether the transcription produced no text
func (t Transcript) IsEmpty() bool {
	return t.NativeText == ""
}
