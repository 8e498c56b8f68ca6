package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetLevel("warn")
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "test message arg")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)
	SetLevel("debug")

	Debug("test message")

	assert.Zero(t, buf.Len(), "debug output needs verbose mode")
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Login")

	assert.Contains(t, buf.String(), "=== Login ===")
}

func TestInfo_RespectsLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetLevel("warn")
	Info("hidden %d", 1)
	assert.Zero(t, buf.Len())

	SetLevel("info")
	Info("info message %d", 42)
	assert.Contains(t, buf.String(), "INF")
	assert.Contains(t, buf.String(), "info message 42")
}

func TestInfo_VerboseOverridesLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("error")
	SetVerbose(true)

	Info("shown")

	assert.Contains(t, buf.String(), "shown")
}

func TestWarnAndError(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("warn")

	Warn("warning message")
	Error("error message")

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "warning message")
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "error message")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"trace", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"loud", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetLevel(t *testing.T) {
	defer reset()

	SetLevel("error")

	assert.Equal(t, zerolog.ErrorLevel, Level())
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	SetOutput(io.Discard)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
