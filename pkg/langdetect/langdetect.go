// Package langdetect provides the local language detection fallback used when the
// transcription service does not report a language, plus helpers that turn the
// labels services return into ISO 639-1 codes and English display names.
package langdetect

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Unknown is the code used when no language can be determined
const Unknown = "unknown"

// Detector detects the language of a text using trigram statistics.
// Detection is deterministic: the same text always yields the same code.
type Detector struct {
	minConfidence float64
}

// NewDetector creates a Detector. Results below minConfidence are reported as undetected.
func NewDetector(minConfidence float64) *Detector {
	return &Detector{minConfidence: minConfidence}
}

// Detect returns the ISO 639-1 code of text. ok is false on empty,
// ambiguous or unsupported input.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimFunc(text, func(r rune) bool { return !unicode.IsLetter(r) }) == "" {
		return "", false
	}

	info := whatlanggo.Detect(text)
	if info.Lang < 0 || info.Confidence < d.minConfidence {
		return "", false
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return "", false
	}
	return code, true
}

// Normalize converts a language label reported by an external service into an
// ISO code. It accepts codes ("en", "pt-BR") and English names ("english").
// Empty and "unknown" labels return ok=false.
func Normalize(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, Unknown) {
		return "", false
	}

	if len(label) <= 3 || strings.ContainsAny(label, "-_") {
		if tag, err := language.Parse(strings.ReplaceAll(label, "_", "-")); err == nil {
			base, _ := tag.Base()
			return base.String(), true
		}
	}

	for lang, name := range whatlanggo.Langs {
		if strings.EqualFold(name, label) {
			if code := lang.Iso6391(); code != "" {
				return code, true
			}
		}
	}

	return strings.ToLower(label), true
}

// IsEnglish reports whether label names English, as a code or a name
func IsEnglish(label string) bool {
	code, ok := Normalize(label)
	return ok && code == "en"
}

// DisplayName returns the English name of an ISO code, "en" -> "English".
// Unresolvable codes are returned title-cased; Unknown stays as is.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || strings.EqualFold(code, Unknown) {
		return Unknown
	}
	if tag, err := language.Parse(code); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	runes := []rune(strings.ToLower(code))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
