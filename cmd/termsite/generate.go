// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/termsite/internal/buildstate"
	"github.com/pdiddy/termsite/internal/site"
	"github.com/pdiddy/termsite/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Markdown pages from the vocabulary",
	Long: `Generate loads every Turtle source, validates the merged graph and writes
the site into the docs root:

  _doc/<reference>.md                  one page per concept
  alias/<slug>.md                      redirect or disambiguation per alternative label
  lijst.md, index.md                   A-Z list and homepage
  begrippenkader.ttl                   the merged vocabulary
  assets/json/alphabetical-nav.json    navigation data

Unchanged files are not rewritten (use --force to rewrite them) and pages of
removed concepts are deleted.
The command fails when validation fails or any page could not be rendered.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if force, _ := cmd.Flags().GetBool("force"); force {
		if err := forgetOutputs(ctx, cfg); err != nil {
			return err
		}
	}
	_, err = generate(ctx, cfg, os.Stdout)
	return err
}

// forgetOutputs clears the recorded output hashes so every page is rewritten.
func forgetOutputs(ctx context.Context, cfg types.PipelineConfig) error {
	store, err := buildstate.Open(cfg.Build)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Reset(ctx)
}

// generate runs one generation pass and fails when pages failed.
func generate(ctx context.Context, cfg types.PipelineConfig, progress io.Writer) (site.Summary, error) {
	gen, store, err := openGenerator(cfg, progress)
	if err != nil {
		return site.Summary{}, err
	}
	defer store.Close()

	summary, err := gen.Run(ctx)
	if err != nil {
		return summary, err
	}
	if summary.HasFailures() {
		return summary, errors.Newf("%d page(s) failed to render", summary.Failed)
	}
	return summary, nil
}

func openGenerator(cfg types.PipelineConfig, progress io.Writer) (*site.Generator, *buildstate.Store, error) {
	store, err := buildstate.Open(cfg.Build)
	if err != nil {
		return nil, nil, err
	}
	return site.NewGenerator(cfg, store, logger, progress), store, nil
}

func init() {
	generateCmd.Flags().Bool("force", false, "rewrite every page even when its content is unchanged")

	rootCmd.AddCommand(generateCmd)
}
