package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Name  string `json:"name" validate:"required"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func TestValidate_RequiredField(t *testing.T) {
	v := InitValidator()

	messages := v.Validate(sampleInput{})

	assert.Len(t, messages, 1)
	assert.Contains(t, messages, "name")
}

func TestValidate_RangeField(t *testing.T) {
	v := InitValidator()

	messages := v.Validate(sampleInput{Name: "x", Limit: 500})

	assert.Len(t, messages, 1)
	assert.Contains(t, messages, "limit")
}

func TestValidate_Valid(t *testing.T) {
	v := InitValidator()

	messages := v.Validate(sampleInput{Name: "x", Limit: 10})

	assert.Empty(t, messages)
}
