package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	d := NewDetector(0)

	code, ok := d.Detect("The quarterly review meeting covered the budget and the hiring plan for next year.")
	assert.True(t, ok)
	assert.Equal(t, "en", code)

	code, ok = d.Detect("La reunión trimestral cubrió el presupuesto y el plan de contratación para el próximo año.")
	assert.True(t, ok)
	assert.Equal(t, "es", code)
}

func TestDetectIsDeterministic(t *testing.T) {
	d := NewDetector(0)
	text := "Die Besprechung war kurz, aber wir haben alle Aufgaben verteilt."

	first, _ := d.Detect(text)
	for i := 0; i < 5; i++ {
		again, _ := d.Detect(text)
		assert.Equal(t, first, again)
	}
}

func TestDetectRejectsEmptyInput(t *testing.T) {
	d := NewDetector(0)

	_, ok := d.Detect("")
	assert.False(t, ok)

	_, ok = d.Detect(" 123 ... ")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"en", "en", true},
		{"EN", "en", true},
		{"pt-BR", "pt", true},
		{"english", "en", true},
		{"Spanish", "es", true},
		{"unknown", "", false},
		{"  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Normalize(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsEnglish(t *testing.T) {
	assert.True(t, IsEnglish("English"))
	assert.True(t, IsEnglish("en"))
	assert.True(t, IsEnglish("en-US"))
	assert.False(t, IsEnglish("hi"))
	assert.False(t, IsEnglish(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "Hindi", DisplayName("hi"))
	assert.Equal(t, "unknown", DisplayName(""))
	assert.Equal(t, "unknown", DisplayName("unknown"))
}
