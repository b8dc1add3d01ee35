package ai

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const (
	// maxExtractedTaskLen caps a task while extracting; the final trim applies maxActionTextLen
	maxExtractedTaskLen = 140
	// maxExtractedActions caps the fallback extractor output
	maxExtractedActions = 10
)

// nameWord is a capitalized word-like token. It stays case-sensitive while the
// trigger keywords around it are matched case-insensitively.
const nameWord = `[A-Z][a-zA-Z]+`

// ws matches one Unicode whitespace rune; RE2's \s covers ASCII only
const ws = `[\s\v\x{85}\p{Z}]`

var (
	// Ordered: the first pattern matching a sentence wins
	assignPatterns = []*regexp.Regexp{
		// "Rahul will finish the frontend by EOD."
		regexp.MustCompile(`\b(` + nameWord + `)` + ws + `+(?i:will)` + ws + `+([^.]+)`),
		// "Assign Ram to handle backend with Flask."
		regexp.MustCompile(`\b(?i:assign)` + ws + `+(` + nameWord + `)` + ws + `+(?i:to)` + ws + `+([^.]+)`),
		// "Sakshin to do integration."
		regexp.MustCompile(`\b(` + nameWord + `)` + ws + `+(?i:to)` + ws + `+([^.]+)`),
		// "Priya is responsible for the release notes."
		regexp.MustCompile(`\b(` + nameWord + `)` + ws + `+(?i:is` + ws + `+responsible` + ws + `+for)` + ws + `+([^.]+)`),
	}

	sentenceEnd = regexp.MustCompile(`[.!?]` + ws + `+`)
	leadingTo   = regexp.MustCompile(`(?i)^to` + ws + `+`)
)

// PatternExtractor recovers assignee/task pairs from a transcript with
// rule-based sentence patterns. It is the fallback when the model returns no actions.
type PatternExtractor struct {
	patterns []*regexp.Regexp
	maxItems int
}

// NewPatternExtractor creates a PatternExtractor with the default assignment patterns
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{
		patterns: assignPatterns,
		maxItems: maxExtractedActions,
	}
}

// Extract returns at most ten deduplicated action items in transcript order.
// An empty transcript yields an empty, non-nil slice.
func (p *PatternExtractor) Extract(transcript string) []entities.ActionItem {
	items := make([]entities.ActionItem, 0)
	seen := make(map[[2]string]struct{})

	for _, sentence := range splitSentences(transcript) {
		item, ok := p.matchSentence(sentence)
		if !ok {
			continue
		}

		key := [2]string{strings.ToLower(item.Assignee), strings.ToLower(item.Text)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		items = append(items, item)
		if len(items) == p.maxItems {
			break
		}
	}

	return items
}

func (p *PatternExtractor) matchSentence(sentence string) (entities.ActionItem, bool) {
	for _, pat := range p.patterns {
		m := pat.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}

		assignee := strings.TrimRight(strings.TrimSpace(m[1]), ",.")
		task := strings.TrimRight(strings.TrimSpace(m[2]), ".")
		task = leadingTo.ReplaceAllString(task, "")
		task = truncateRunes(collapseWhitespace(task), maxExtractedTaskLen)

		// The first matching pattern decides the sentence even when it yields no task
		if task == "" {
			return entities.ActionItem{}, false
		}
		return entities.ActionItem{Assignee: assignee, Text: task}, true
	}
	return entities.ActionItem{}, false
}

// splitSentences cuts text after every '.', '!' or '?' followed by whitespace
// and drops blank sentences
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		sentences = appendSentence(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	return appendSentence(sentences, text[start:])
}

func appendSentence(sentences []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
