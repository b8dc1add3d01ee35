package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const (
	// maxActionTextLen is the final cap applied to every action text
	maxActionTextLen = 120

	// DefaultBrief is used when the analysis response carries no summary
	DefaultBrief = "Key tasks were assigned with a target of EOD completion."

	noteInvalidJSON = "Invalid JSON response"
)

var (
	codeFence       = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	leadingJSONTag  = regexp.MustCompile(`(?i)^\s*json\s*`)
	nameColonAction = regexp.MustCompile(`^\s*(` + nameWord + `)\s*[:\-]\s*(.+?)\s*$`)
)

// Parser turns raw model output into typed records. None of its methods fail:
// unusable input produces empty values the caller replaces with defaults.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseJSON extracts a JSON object from model output. The content may be wrapped
// in a code fence or prefixed with a bare "json" tag. Anything that is not a JSON
// object yields an empty, non-nil map and false.
func (p *Parser) ParseJSON(raw string) (map[string]any, bool) {
	content := extractJSON(raw)

	if out, err := decodeObject(content); err == nil {
		return out, true
	}

	stripped := strings.TrimSpace(leadingJSONTag.ReplaceAllString(content, ""))
	if out, err := decodeObject(stripped); err == nil {
		return out, true
	}

	return map[string]any{}, false
}

// Moderation normalizes a moderation response. Unparsable output becomes an
// unflagged result with the "Invalid JSON response" note. The model's is_flagged
// verdict is kept as given; only when it is absent is it derived from the categories.
func (p *Parser) Moderation(raw string) entities.ModerationResult {
	data, ok := p.ParseJSON(raw)
	if !ok {
		return entities.NewModerationResult(noteInvalidJSON)
	}

	result := entities.NewModerationResult()
	anyCategory := false
	if cats, ok := data["categories"].(map[string]any); ok {
		for _, name := range entities.ModerationCategories {
			if v, ok := asBool(cats[name]); ok {
				result.Categories[name] = v
				anyCategory = anyCategory || v
			}
		}
	}
	if flagged, ok := asBool(data["is_flagged"]); ok {
		result.IsFlagged = flagged
	} else {
		result.IsFlagged = anyCategory
	}
	result.Notes = asStringList(data["notes"])

	return result
}

// Analysis normalizes an analysis response into a record. The returned actions
// may be empty; the caller decides whether to run the fallback extractor.
// The summary default and the final action trim are applied by the caller too.
func (p *Parser) Analysis(raw string) entities.AnalysisRecord {
	data, _ := p.ParseJSON(raw)

	record := entities.AnalysisRecord{
		Summary: strings.TrimSpace(asString(data["summary"])),
		Actions: p.Actions(data["actions"]),
		Moderation: entities.MeetingModeration{
			Notes: []string{},
		},
	}

	if mod, ok := data["moderation"].(map[string]any); ok {
		record.Moderation.Interruptions = asInt(mod["interruptions"])
		record.Moderation.Notes = asStringList(mod["notes"])
	}

	return record
}

// Actions normalizes the "actions" field of a parsed response. Mappings provide
// assignee and text keys; bare strings are split on "Name: task" or "Name - task",
// otherwise the whole string is the task. Entries without text are dropped and
// non-list values yield an empty slice.
func (p *Parser) Actions(v any) []entities.ActionItem {
	actions := make([]entities.ActionItem, 0)

	list, ok := v.([]any)
	if !ok {
		return actions
	}

	for _, entry := range list {
		var item entities.ActionItem
		switch a := entry.(type) {
		case map[string]any:
			item.Assignee = strings.TrimSpace(firstString(a, "assignee", "owner"))
			item.Text = strings.TrimSpace(firstString(a, "text", "task", "title"))
		case string:
			if m := nameColonAction.FindStringSubmatch(a); m != nil {
				item.Assignee = m[1]
				item.Text = m[2]
			} else {
				item.Text = strings.TrimSpace(a)
			}
		default:
			continue
		}

		if item.Text == "" {
			continue
		}
		actions = append(actions, item)
	}

	return actions
}

// TrimActions collapses whitespace and caps every text at 120 characters
func (p *Parser) TrimActions(actions []entities.ActionItem) []entities.ActionItem {
	out := make([]entities.ActionItem, 0, len(actions))
	for _, a := range actions {
		out = append(out, entities.ActionItem{
			Assignee: strings.TrimSpace(a.Assignee),
			Text:     strings.TrimSpace(truncateRunes(collapseWhitespace(a.Text), maxActionTextLen)),
		})
	}
	return out
}

// extractJSON returns the content of the first fenced code block, or the trimmed input
func extractJSON(content string) string {
	if m := codeFence.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

func decodeObject(s string) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("not a JSON object")
	}
	return out, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	default:
		return false, false
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

func asStringList(v any) []string {
	out := []string{}
	switch n := v.(type) {
	case []any:
		for _, e := range n {
			if s := strings.TrimSpace(asString(e)); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(n); s != "" {
			out = append(out, s)
		}
	}
	return out
}
