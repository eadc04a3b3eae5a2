package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_SilentByDefault(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestDebug_PrintsWhenVerbose(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Debug("value=%d", 42)

	assert.Contains(t, buf.String(), "[DEBUG] value=42")
}

func TestWarn_PrintsWithoutVerbose(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)

	Warn("falling back: %s", "timeout")

	assert.Contains(t, buf.String(), "[WARN] falling back: timeout")
}

func TestSection_Format(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Section("Catalog Lookup")

	assert.Contains(t, buf.String(), "=== Catalog Lookup ===")
}

func TestIsVerbose(t *testing.T) {
	defer resetLogger()

	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}
