package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Text string `validate:"notblank"`
	Lang string `validate:"omitempty,langtag"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(sample{Text: "hello", Lang: "pt-BR"}))
	assert.NoError(t, v.Validate(sample{Text: "hello", Lang: "spanish"}))
	assert.NoError(t, v.Validate(sample{Text: "hello"}))

	assert.Error(t, v.Validate(sample{Text: "   "}))
	assert.Error(t, v.Validate(sample{Text: "hello", Lang: "es;drop"}))
}
