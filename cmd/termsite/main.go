// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the termsite CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/termsite/internal/logging"
	"github.com/pdiddy/termsite/internal/secrets"
	"github.com/pdiddy/termsite/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	logger        = zap.NewNop()
	loadedSecrets secrets.Secrets
)

// rootCmd is the base command for the termsite CLI.
var rootCmd = &cobra.Command{
	Use:   "termsite",
	Short: "Generate a documentation site from a SKOS vocabulary",
	Long: `termsite turns a SKOS vocabulary written in Turtle into Markdown pages for a
Jekyll site: one page per concept, redirect pages for alternative labels, an
A-Z list and a homepage. Occurrences of vocabulary terms in definitions and
notes are linked to their concept pages automatically.

Use generate to write the pages, build or serve to run Jekyll on them, and
validate to check the vocabulary without generating anything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = logging.New(logging.Options{JSON: jsonLogs, Verbose: verbose, Output: os.Stderr})

		if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
			logger.Debug("using config file", zap.String(logging.FieldFile, cfgFile))
		}

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug("loaded secrets", zap.Strings("keys", s.Keys()))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./termsite.yaml or ~/.config/termsite/config.yaml)")
	flags.Bool("log-json", false, "write structured logs as JSON")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	flags.StringSlice("source", nil, "Turtle source globs or URLs (default begrippenkader/**/*.ttl)")
	flags.String("lang", "", "preferred label language")
	flags.String("docs-root", "", "directory pages are generated into")
	flags.String("base-url", "", "site base URL prefixed to links")
	flags.String("templates", "", "directory with template overrides")
	flags.String("state-dir", "", "build state directory")
	flags.Bool("incremental", true, "skip rewriting unchanged files")
	flags.Bool("validate", true, "validate the vocabulary before generating")
	flags.Bool("link", true, "link vocabulary terms in free text")
	flags.String("jekyll-mode", "", "native or container")
	flags.Int("port", 0, "port for serve")

	for key, flag := range map[string]string{
		"source.patterns":    "source",
		"source.language":    "lang",
		"site.docs_root":     "docs-root",
		"site.base_url":      "base-url",
		"site.template_dir":  "templates",
		"build.state_dir":    "state-dir",
		"build.incremental":  "incremental",
		"validation.enabled": "validate",
		"linking.enabled":    "link",
		"jekyll.mode":        "jekyll-mode",
		"jekyll.port":        "port",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
	setDefaults(types.DefaultConfig())
	// The token has no yaml key, so it is only known to viper through env.
	_ = viper.BindEnv("source.token")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("termsite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "termsite"))
		}
	}

	viper.SetEnvPrefix("TERMSITE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// setDefaults registers every key of cfg with viper so that environment
// variables such as TERMSITE_SITE_BASE_URL are picked up.
func setDefaults(cfg types.PipelineConfig) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		panic(err)
	}
	flattenDefaults("", tree)
}

func flattenDefaults(prefix string, tree map[string]any) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenDefaults(key, sub)
			continue
		}
		viper.SetDefault(key, v)
	}
}

// loadConfig decodes the merged configuration: defaults, config file,
// environment and flags, in increasing precedence.
func loadConfig() (types.PipelineConfig, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding configuration")
	}
	loadedSecrets.Apply(&cfg.Source)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
