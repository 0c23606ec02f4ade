// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/termsite/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "source-token", "  tok_abc123  \n")
				writeFile(t, dir, "other-key", "value")
				return dir
			},
			want: Secrets{"source-token": "tok_abc123", "other-key": "value"},
		},
		{
			name: "skips hidden files, directories and empty values",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, "blank", "  \n")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				writeFile(t, dir, "source-token", "tok")
				return dir
			},
			want: Secrets{"source-token": "tok"},
		},
		{
			name: "missing directory is not an error",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent")
			},
			want: Secrets{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, Secrets{"good-key": "value123"}, got)
}

func TestGetAndApply(t *testing.T) {
	s := Secrets{SourceToken: "from-file", "b": "2", "a": "1"}

	assert.Equal(t, "explicit", s.Get(SourceToken, "explicit"))
	assert.Equal(t, "from-file", s.Get(SourceToken, ""))
	assert.Empty(t, s.Get("missing", ""))
	assert.Equal(t, []string{"a", "b", SourceToken}, s.Keys())

	var cfg types.SourceConfig
	s.Apply(&cfg)
	assert.Equal(t, "from-file", cfg.Token)

	cfg.Token = "configured"
	s.Apply(&cfg)
	assert.Equal(t, "configured", cfg.Token)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
