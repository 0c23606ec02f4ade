// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/termsite/internal/buildstate"
	"github.com/pdiddy/termsite/internal/jekyll"
	"github.com/pdiddy/termsite/internal/logging"
	"github.com/pdiddy/termsite/internal/watch"
	"github.com/pdiddy/termsite/pkg/types"
)

// --- build ---

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the pages and build the site with Jekyll",
	Long: `Build copies the static docs directory into the build directory, generates
the vocabulary pages into it and runs "jekyll build". Jekyll runs through
bundler, or in docker or podman with --jekyll-mode container.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = buildConfig(cfg)
	if err := prepare(ctx, cfg); err != nil {
		return err
	}
	return jekyll.New(cfg.Jekyll, logger).Build(ctx)
}

// --- serve ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site, serve it and regenerate on changes",
	Long: `Serve prepares and generates the site like build, starts the Jekyll
development server and watches the vocabulary sources, templates and static
docs. Every change regenerates the affected pages; Jekyll picks them up.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = buildConfig(cfg)
	if err := prepare(ctx, cfg); err != nil {
		return err
	}

	w, err := watch.New(watchDirs(cfg), watch.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	watching := make(chan struct{})
	go func() {
		defer close(watching)
		_ = w.Run(ctx, func(ctx context.Context, changed []string) error {
			logger.Info("sources changed", zap.Strings(logging.FieldFile, changed))
			return prepare(ctx, cfg)
		})
	}()

	err = jekyll.New(cfg.Jekyll, logger).Serve(ctx)
	stop()
	<-watching
	return err
}

// buildConfig points generation at the Jekyll build directory.
func buildConfig(cfg types.PipelineConfig) types.PipelineConfig {
	cfg.Site.DocsRoot = cfg.Jekyll.BuildDir
	return cfg
}

// prepare copies the static docs and generates the pages.
func prepare(ctx context.Context, cfg types.PipelineConfig) error {
	n, err := jekyll.PrepareBuild(cfg.Jekyll.StaticDir, cfg.Jekyll.BuildDir)
	if err != nil {
		return err
	}
	logger.Debug("static files copied", zap.Int(logging.FieldCount, n),
		zap.String(logging.FieldSource, cfg.Jekyll.StaticDir))
	_, err = generate(ctx, cfg, os.Stdout)
	return err
}

// watchDirs returns the local directories that feed generation: the base
// directories of the source patterns, the template directory and the
// static docs. The build directory is never watched.
func watchDirs(cfg types.PipelineConfig) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if dir == "" {
			return
		}
		dir = filepath.Clean(dir)
		if seen[dir] || dir == filepath.Clean(cfg.Jekyll.BuildDir) {
			return
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	for _, p := range cfg.Source.Patterns {
		if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			continue
		}
		base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
		add(filepath.FromSlash(base))
	}
	add(cfg.Site.TemplateDir)
	add(cfg.Jekyll.StaticDir)
	return dirs
}

// --- clean ---

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated pages, build output and build state",
	Long: `Clean deletes every file recorded by previous generate runs, the Jekyll
build and site directories, and the build state directory. Static docs that
were not generated are left alone.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := buildstate.Open(cfg.Build)
	if err != nil {
		return err
	}
	removed, err := store.RemoveStale(context.Background(), "", nil)
	store.Close()
	if err != nil {
		return err
	}
	fmt.Printf("removed %d generated file(s)\n", len(removed))

	for _, dir := range []string{cfg.Jekyll.BuildDir, cfg.Jekyll.SiteDir, cfg.Build.StateDir} {
		if dir == "" || filepath.Clean(dir) == filepath.Clean(cfg.Jekyll.StaticDir) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, "removing %s", dir)
		}
		fmt.Println("removed", dir)
	}
	return nil
}

// --- status ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the build state records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := buildstate.Open(cfg.Build)
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.Stats(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("State directory:   %s\n", store.Dir())
		fmt.Printf("Generated files:   %d\n", st.Outputs)
		fmt.Printf("Indexed concepts:  %d\n", st.Concepts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(statusCmd)
}
