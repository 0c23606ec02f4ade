// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used when fetching remote vocabulary
// sources.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "termsite/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds the retries on HTTP 429 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Token is sent as a bearer token to remote sources. It is normally
	// loaded from .secrets/source-token rather than from the config file.
	Token string `json:"-" yaml:"-" mapstructure:"token"`
}

// SourceConfig describes where the vocabulary is read from.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Patterns are doublestar globs or http(s) URLs of Turtle sources
	// (default "begrippenkader/**/*.ttl").
	Patterns []string `json:"patterns" yaml:"patterns" mapstructure:"patterns"`

	// Language is the preferred language tag for labels (default "nl").
	// Untagged literals are used when no literal carries this tag.
	Language string `json:"language" yaml:"language" mapstructure:"language"`
}

// ValidationConfig controls the SKOS profile validation gate.
type ValidationConfig struct {
	// Enabled runs validation before generation (default true).
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// WarningsAsErrors makes warnings fail the gate as well.
	WarningsAsErrors bool `json:"warnings_as_errors" yaml:"warnings_as_errors" mapstructure:"warnings_as_errors"`
}

// LinkingConfig controls automatic term linking inside free-text fields.
type LinkingConfig struct {
	// Enabled turns auto-linking on (default true).
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// IncludeAltLabels also links occurrences of skos:altLabel terms.
	IncludeAltLabels bool `json:"include_alt_labels" yaml:"include_alt_labels" mapstructure:"include_alt_labels"`

	// IncludeHiddenLabels also links occurrences of skos:hiddenLabel terms.
	IncludeHiddenLabels bool `json:"include_hidden_labels" yaml:"include_hidden_labels" mapstructure:"include_hidden_labels"`
}

// SiteConfig holds output layout and URL settings.
type SiteConfig struct {
	// DocsRoot is the directory pages are generated into (default "docs").
	DocsRoot string `json:"docs_root" yaml:"docs_root" mapstructure:"docs_root"`

	// TemplateDir optionally overrides the embedded page templates.
	TemplateDir string `json:"template_dir,omitempty" yaml:"template_dir,omitempty" mapstructure:"template_dir"`

	// BaseURL prefixes absolute links in lists and relation fields
	// (e.g. "/energiesysteembeheer").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// PublishBaseURI is the @base of the downloadable Turtle export.
	PublishBaseURI string `json:"publish_base_uri" yaml:"publish_base_uri" mapstructure:"publish_base_uri"`

	// ConceptNamespace is bound to the empty prefix in the Turtle export.
	ConceptNamespace string `json:"concept_namespace" yaml:"concept_namespace" mapstructure:"concept_namespace"`

	// IncludeHiddenAliases also generates alias pages for skos:hiddenLabel.
	IncludeHiddenAliases bool `json:"include_hidden_aliases" yaml:"include_hidden_aliases" mapstructure:"include_hidden_aliases"`
}

// BuildConfig holds settings for incremental builds and the search index.
type BuildConfig struct {
	// StateDir holds the build state database (default ".termsite").
	StateDir string `json:"state_dir" yaml:"state_dir" mapstructure:"state_dir"`

	// Incremental skips rewriting files whose content is unchanged (default true).
	Incremental bool `json:"incremental" yaml:"incremental" mapstructure:"incremental"`
}

// JekyllMode selects how Jekyll is invoked.
type JekyllMode string

const (
	JekyllNative    JekyllMode = "native"
	JekyllContainer JekyllMode = "container"
)

// JekyllConfig holds settings for building and serving the generated site.
type JekyllConfig struct {
	// Mode is native (bundle exec jekyll) or container (default native).
	Mode JekyllMode `json:"mode" yaml:"mode" mapstructure:"mode"`

	// Image is the container image used in container mode.
	Image string `json:"image" yaml:"image" mapstructure:"image"`

	// StaticDir is copied into BuildDir before generation (default "docs").
	StaticDir string `json:"static_dir" yaml:"static_dir" mapstructure:"static_dir"`

	// BuildDir is the Jekyll source directory (default "_build").
	BuildDir string `json:"build_dir" yaml:"build_dir" mapstructure:"build_dir"`

	// SiteDir is the Jekyll destination directory (default "_site").
	SiteDir string `json:"site_dir" yaml:"site_dir" mapstructure:"site_dir"`

	// Port is the port used by serve (default 4000).
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Source     SourceConfig     `json:"source" yaml:"source" mapstructure:"source"`
	Validation ValidationConfig `json:"validation" yaml:"validation" mapstructure:"validation"`
	Linking    LinkingConfig    `json:"linking" yaml:"linking" mapstructure:"linking"`
	Site       SiteConfig       `json:"site" yaml:"site" mapstructure:"site"`
	Build      BuildConfig      `json:"build" yaml:"build" mapstructure:"build"`
	Jekyll     JekyllConfig     `json:"jekyll" yaml:"jekyll" mapstructure:"jekyll"`
}

// DefaultConfig returns the configuration used when no config file sets a value.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Source: SourceConfig{
			HTTPConfig: HTTPConfig{
				Timeout:    60 * time.Second,
				UserAgent:  "termsite/0.1",
				MaxRetries: 5,
			},
			Patterns: []string{"begrippenkader/**/*.ttl"},
			Language: "nl",
		},
		Validation: ValidationConfig{Enabled: true},
		Linking:    LinkingConfig{Enabled: true},
		Site: SiteConfig{
			DocsRoot:         "docs",
			BaseURL:          "/energiesysteembeheer",
			PublishBaseURI:   "https://begrippen.netbeheernederland.nl",
			ConceptNamespace: "https://begrippen.netbeheernederland.nl/id/",
		},
		Build: BuildConfig{
			StateDir:    ".termsite",
			Incremental: true,
		},
		Jekyll: JekyllConfig{
			Mode:      JekyllNative,
			Image:     "jekyll/jekyll:4",
			StaticDir: "docs",
			BuildDir:  "_build",
			SiteDir:   "_site",
			Port:      4000,
		},
	}
}
