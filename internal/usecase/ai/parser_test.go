package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestParser_ParseJSON(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name   string
		raw    string
		want   map[string]any
		wantOK bool
	}{
		{"fenced with tag", "```json\n{\"a\":1}\n```", map[string]any{"a": float64(1)}, true},
		{"fenced without tag", "```\n{\"a\":1}\n```", map[string]any{"a": float64(1)}, true},
		{"fence with surrounding prose", "Here you go:\n```json\n{\"a\":\"x\"}\n```\nThanks", map[string]any{"a": "x"}, true},
		{"plain", `  {"a": true} `, map[string]any{"a": true}, true},
		{"bare json tag", "JSON {\"a\":2}", map[string]any{"a": float64(2)}, true},
		{"empty object", "{}", map[string]any{}, true},
		{"garbage", "I cannot help with that", map[string]any{}, false},
		{"array", "[1,2,3]", map[string]any{}, false},
		{"null", "null", map[string]any{}, false},
		{"empty", "", map[string]any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseJSON(tt.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParser_Moderation(t *testing.T) {
	p := NewParser()

	t.Run("valid", func(t *testing.T) {
		got := p.Moderation(`{"is_flagged": true, "categories": {"hate": false, "violence": true, "unknown": true}, "notes": "threat"}`)

		assert.True(t, got.IsFlagged)
		assert.Equal(t, map[string]bool{"hate": false, "violence": true}, got.Categories)
		assert.Equal(t, []string{"threat"}, got.Notes)
	})

	t.Run("model verdict is kept", func(t *testing.T) {
		got := p.Moderation(`{"is_flagged": false, "categories": {"sexual": true}, "notes": []}`)

		assert.False(t, got.IsFlagged)
		assert.True(t, got.Categories["sexual"])
		assert.Empty(t, got.Notes)
		assert.NotNil(t, got.Notes)
	})

	t.Run("missing verdict follows categories", func(t *testing.T) {
		got := p.Moderation(`{"categories": {"violence": true}}`)

		assert.True(t, got.IsFlagged)
	})

	t.Run("empty object is not invalid", func(t *testing.T) {
		got := p.Moderation("```json\n{}\n```")

		assert.Equal(t, entities.ModerationResult{
			IsFlagged:  false,
			Categories: map[string]bool{},
			Notes:      []string{},
		}, got)
	})

	t.Run("invalid json", func(t *testing.T) {
		got := p.Moderation("not json at all")

		assert.Equal(t, entities.ModerationResult{
			IsFlagged:  false,
			Categories: map[string]bool{},
			Notes:      []string{"Invalid JSON response"},
		}, got)
	})
}

func TestParser_Analysis(t *testing.T) {
	p := NewParser()

	raw := "```json\n" + `{
		"summary": " Launch moved to Friday. ",
		"actions": [
			{"assignee": "Rahul", "text": "finish the frontend"},
			"Ram: handle backend",
			"Sakshin - do integration",
			"update the docs",
			{"assignee": "Nobody", "text": "  "},
			42
		],
		"moderation": {"interruptions": "3", "notes": "toxic: \"idiot\""}
	}` + "\n```"

	got := p.Analysis(raw)

	assert.Equal(t, "Launch moved to Friday.", got.Summary)
	assert.Equal(t, []entities.ActionItem{
		{Assignee: "Rahul", Text: "finish the frontend"},
		{Assignee: "Ram", Text: "handle backend"},
		{Assignee: "Sakshin", Text: "do integration"},
		{Assignee: "", Text: "update the docs"},
	}, got.Actions)
	assert.Equal(t, 3, got.Moderation.Interruptions)
	assert.Equal(t, []string{`toxic: "idiot"`}, got.Moderation.Notes)
}

func TestParser_AnalysisGarbage(t *testing.T) {
	got := NewParser().Analysis("the model refused")

	assert.Empty(t, got.Summary)
	assert.NotNil(t, got.Actions)
	assert.Empty(t, got.Actions)
	assert.NotNil(t, got.Moderation.Notes)
}

func TestParser_ActionsNonList(t *testing.T) {
	p := NewParser()

	assert.Equal(t, []entities.ActionItem{}, p.Actions("Rahul: do it"))
	assert.Equal(t, []entities.ActionItem{}, p.Actions(map[string]any{"text": "x"}))
	assert.Equal(t, []entities.ActionItem{}, p.Actions(nil))
}

func TestParser_TrimActions(t *testing.T) {
	long := strings.Repeat("word ", 40)

	got := NewParser().TrimActions([]entities.ActionItem{
		{Assignee: " Rahul ", Text: "fix\t\tthe \n build"},
		{Assignee: "", Text: long},
		{Assignee: "Léa\u00a0", Text: "relire\v\vle\u00a0\u00a0compte\u2028rendu\u202f"},
	})

	assert.Equal(t, "Rahul", got[0].Assignee)
	assert.Equal(t, "fix the build", got[0].Text)
	assert.Equal(t, "Léa", got[2].Assignee)
	assert.Equal(t, "relire le compte rendu", got[2].Text)
	assert.LessOrEqual(t, utf8.RuneCountInString(got[1].Text), maxActionTextLen)
	assert.NotContains(t, got[1].Text, "  ")
}
