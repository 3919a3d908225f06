package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQueueMessageRequest(t *testing.T) {
	msg := NewQueueMessageRequest(map[string]string{
		"time":             "2016-05-01T10:00:00Z",
		"ship":             "Endeavour",
		"exceptionmessage": "Sensor timeout",
		"unrelated":        "ignored",
	})

	assert.Equal(t, "2016-05-01T10:00:00Z", msg.Time)
	assert.Equal(t, "Endeavour", msg.Ship)
	assert.Equal(t, "Sensor timeout", msg.ExceptionMessage)
}

func TestNewQueueMessageRequest_MissingKeys(t *testing.T) {
	msg := NewQueueMessageRequest(map[string]string{})

	assert.Empty(t, msg.Time)
	assert.Empty(t, msg.Ship)
	assert.Empty(t, msg.ExceptionMessage)
}
