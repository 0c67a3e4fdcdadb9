package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("test message", "court_id", 7)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "court_id")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Error("test error")

	output := buf.String()
	assert.Contains(t, output, "test error")
	assert.Contains(t, output, "ERROR")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Infof("booking %d created", 42)

	assert.Contains(t, buf.String(), "booking 42 created")
}
