// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pdiddy/termsite/internal/httputil"
	"github.com/pdiddy/termsite/pkg/types"
)

// ErrNoSources is returned when no source pattern matches any file.
var ErrNoSources = errors.New("no turtle sources found")

// Loader resolves source patterns and parses them into one graph.
type Loader struct {
	cfg    types.SourceConfig
	client *http.Client
	logger *zap.Logger
}

// NewLoader creates a loader. A nil client disables remote sources; a nil
// logger discards log output.
func NewLoader(cfg types.SourceConfig, client *http.Client, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cfg: cfg, client: client, logger: logger}
}

// Resolve expands the configured patterns into an ordered, de-duplicated
// list of local file paths and remote URLs.
func (l *Loader) Resolve() ([]string, error) {
	var sources []string
	seen := make(map[string]bool)
	for _, pattern := range l.cfg.Patterns {
		if isRemote(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				sources = append(sources, pattern)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "expanding pattern %q", pattern)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				sources = append(sources, m)
			}
		}
	}
	if len(sources) == 0 {
		return nil, errors.WithHintf(ErrNoSources, "patterns: %s", strings.Join(l.cfg.Patterns, ", "))
	}
	return sources, nil
}

// Load parses every resolved source into a single graph. Any parse failure
// aborts the load: a partially read vocabulary would produce broken links.
func (l *Loader) Load(ctx context.Context) (*Graph, []string, error) {
	sources, err := l.Resolve()
	if err != nil {
		return nil, nil, err
	}

	g := New()
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		data, err := l.read(ctx, src)
		if err != nil {
			return nil, nil, err
		}
		n, err := ParseTurtle(bytes.NewReader(data), g)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "parsing %s", src)
		}
		l.logger.Debug("parsed source", zap.String("source", src), zap.Int("triples", n))
	}
	l.logger.Info("vocabulary loaded",
		zap.Int("sources", len(sources)), zap.Int("triples", g.Len()))
	return g, sources, nil
}

func (l *Loader) read(ctx context.Context, src string) ([]byte, error) {
	if !isRemote(src) {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", src)
		}
		return data, nil
	}
	if l.client == nil {
		return nil, errors.Newf("remote source %s requires an HTTP client", src)
	}
	data, err := httputil.Fetch(ctx, l.client, src, l.cfg.HTTPConfig, "text/turtle")
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", src)
	}
	return data, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
