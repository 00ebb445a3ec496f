package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFunc func(Logger, string)
		want    bool
	}{
		{"debug at debug", LevelDebug, func(l Logger, m string) { l.Debug(m) }, true},
		{"debug at info", LevelInfo, func(l Logger, m string) { l.Debug(m) }, false},
		{"info at info", LevelInfo, func(l Logger, m string) { l.Info(m) }, true},
		{"warn at error", LevelError, func(l Logger, m string) { l.Warn(m) }, false},
		{"error at error", LevelError, func(l Logger, m string) { l.Error(m) }, true},
		{"error when silent", LevelSilent, func(l Logger, m string) { l.Error(m) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.logFunc(NewLogger(tt.level, buf), "test message")

			assert.Equal(t, tt.want, bytes.Contains(buf.Bytes(), []byte("test message")), buf.String())
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	buf := &bytes.Buffer{}
	NewLogger(LevelInfo, buf).Info("input rejected", F("kind", "parse"), F("attempt", 2))

	out := buf.String()
	assert.Contains(t, out, "[INFO] input rejected |")
	assert.Contains(t, out, "kind=parse")
	assert.Contains(t, out, "attempt=2")
}

func TestLogger_WithFieldsSharesLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewLogger(LevelError, buf)
	child := base.WithFields(F("prompt", "integer"))

	child.Info("hidden")
	assert.Zero(t, buf.Len())

	base.SetLevel(LevelDebug)
	child.Debug("shown", F("input", "abc"))

	out := buf.String()
	assert.Contains(t, out, "prompt=integer")
	assert.Contains(t, out, "input=abc")
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelSilent, "SILENT"},
		{Level(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	buf := &bytes.Buffer{}
	SetDefault(NewLogger(LevelWarn, buf))

	Info("skipped")
	Warn("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "kept")
}

func BenchmarkLogger_Info(b *testing.B) {
	l := NewLogger(LevelInfo, bytes.NewBuffer(make([]byte, 0, 1024*1024)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message", F("iteration", i))
	}
}
