// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// The filename is the key and the trimmed contents are the value.
//
// Known keys: source-token (bearer token for remote Turtle sources).
package secrets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pdiddy/termsite/internal/logging"
	"github.com/pdiddy/termsite/pkg/types"
)

// DefaultDir is the directory read by the CLI.
const DefaultDir = ".secrets"

// SourceToken authenticates requests for remote vocabulary sources.
const SourceToken = "source-token"

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads every regular file in dir. A missing directory yields no
// secrets; unreadable files are logged and skipped.
func Load(dir string, logger *zap.Logger) (Secrets, error) {
	logger = logging.OrNop(logger)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, errors.Wrapf(err, "reading secrets directory %s", dir)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", zap.String(logging.FieldFile, name), zap.Error(err))
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Get returns fallback when it is set, else the secret for key.
func (s Secrets) Get(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[key]
}

// Keys returns the loaded key names in sorted order.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply fills credentials of cfg that are not configured explicitly.
func (s Secrets) Apply(cfg *types.SourceConfig) {
	cfg.Token = s.Get(SourceToken, cfg.Token)
}
