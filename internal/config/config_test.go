package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X86-Point5/input-handler/input"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ThemeColor, cfg.Theme)
	assert.Equal(t, EchoAuto, cfg.Echo)
	assert.Empty(t, cfg.String.Banned)
	assert.Equal(t, input.DefaultIntBounds, cfg.IntBounds())
	assert.Equal(t, input.DefaultFloatBounds, cfg.FloatBounds())
	assert.Equal(t, input.DefaultCharOptions, cfg.CharOptions())
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

	assert.Error(t, err)
}

func TestLoad_FromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, `
theme: plain
integer:
  min: 1
  max: 10
  exclusive: true
char:
  allowed: yn
  fold_case: true
string:
  banned: [admin, root]
`)
	chdir(t, dir)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ThemePlain, cfg.Theme)
	assert.Equal(t, input.Bounds[int]{Lower: 1, Upper: 10, Exclusive: true}, cfg.IntBounds())
	assert.Equal(t, input.CharOptions{Allowed: "yn", FoldCase: true}, cfg.CharOptions())
	assert.Equal(t, []string{"admin", "root"}, cfg.String.Banned)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, EchoAuto, cfg.Echo)
	assert.Equal(t, input.DefaultBannedMessage, cfg.String.ErrorMessage)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "integer:\n  max: 10\n")
	t.Setenv("INPUTHANDLER_INTEGER_MAX", "99")
	t.Setenv("INPUTHANDLER_FLOAT_EXCLUSIVE", "true")
	t.Setenv("INPUTHANDLER_ECHO", "never")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 99, cfg.Integer.Max)
	assert.True(t, cfg.Float.Exclusive)
	assert.Equal(t, EchoNever, cfg.Echo)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown theme", "theme: neon\n", "theme"},
		{"unknown echo", "echo: sometimes\n", "echo"},
		{"unknown log level", "log_level: loud\n", "log_level"},
		{"inverted integer bounds", "integer:\n  min: 5\n  max: 1\n", "integer"},
		{"inverted float bounds", "float:\n  min: 2.5\n  max: 1.5\n", "float"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.content)

			_, err := Load(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSave_ThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Theme = ThemePlain
	cfg.String.Banned = []string{"admin"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
