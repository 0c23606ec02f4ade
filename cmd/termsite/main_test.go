// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/termsite/pkg/types"
)

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	initConfig()
	t.Setenv("TERMSITE_SITE_BASE_URL", "/begrippen")
	t.Setenv("TERMSITE_JEKYLL_PORT", "4100")

	cfg, err := loadConfig()
	require.NoError(t, err)

	def := types.DefaultConfig()
	assert.Equal(t, "/begrippen", cfg.Site.BaseURL)
	assert.Equal(t, 4100, cfg.Jekyll.Port)
	assert.Equal(t, def.Source.Patterns, cfg.Source.Patterns)
	assert.Equal(t, 60*time.Second, cfg.Source.Timeout)
	assert.True(t, cfg.Validation.Enabled)
	assert.True(t, cfg.Build.Incremental)
	assert.Equal(t, types.JekyllNative, cfg.Jekyll.Mode)
}

func TestWatchDirs(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"begrippenkader/energie", "templates", "docs", "_build"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, d), 0o755))
	}

	cfg := types.DefaultConfig()
	cfg.Source.Patterns = []string{
		filepath.Join(dir, "begrippenkader", "**", "*.ttl"),
		filepath.Join(dir, "begrippenkader", "energie", "extra.ttl"),
		"https://begrippen.example.nl/vocab.ttl",
		filepath.Join(dir, "missing", "*.ttl"),
	}
	cfg.Site.TemplateDir = filepath.Join(dir, "templates")
	cfg.Jekyll.StaticDir = filepath.Join(dir, "docs")
	cfg.Jekyll.BuildDir = filepath.Join(dir, "_build")

	assert.Equal(t, []string{
		filepath.Join(dir, "begrippenkader"),
		filepath.Join(dir, "begrippenkader", "energie"),
		filepath.Join(dir, "templates"),
		filepath.Join(dir, "docs"),
	}, watchDirs(cfg))

	cfg.Jekyll.StaticDir = cfg.Jekyll.BuildDir
	assert.NotContains(t, watchDirs(cfg), cfg.Jekyll.BuildDir)
}

func TestBuildConfig(t *testing.T) {
	cfg := buildConfig(types.DefaultConfig())
	assert.Equal(t, "_build", cfg.Site.DocsRoot)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Meter", truncate("Meter", 10))
	assert.Equal(t, "Eén-fa...", truncate("Eén-fase aansluiting", 9))
}

func TestLinkInput(t *testing.T) {
	text, err := linkInput([]string{"de", "meter"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "de meter", text)

	text, err = linkInput(nil, strings.NewReader("Het laagtelwerk.\n"))
	require.NoError(t, err)
	assert.Equal(t, "Het laagtelwerk.\n", text)

	broken := errors.New("closed pipe")
	_, err = linkInput(nil, iotest.ErrReader(broken))
	require.Error(t, err)
	assert.True(t, errors.Is(err, broken))
	assert.Contains(t, err.Error(), "reading stdin")
}
