// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/termsite/internal/rdfgraph"
	"github.com/pdiddy/termsite/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the vocabulary against the SKOS profile",
	Long: `Validate loads the vocabulary and checks every concept: a preferred label
and definition are required, labels must be literals and may not repeat as
alternative or hidden labels, and relations must point to concepts.

The report is printed in text, JSON or YAML. The command fails on
violations, and on warnings too with --strict.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loader := rdfgraph.NewLoader(cfg.Source, &http.Client{Timeout: cfg.Source.Timeout}, logger)
	g, _, err := loader.Load(context.Background())
	if err != nil {
		return err
	}

	report := validate.Validate(g)
	switch format {
	case "text", "":
		fmt.Print(report.Text())
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		return errors.Newf("unsupported format %q: use text, json or yaml", format)
	}

	return report.Err(strict || cfg.Validation.WarningsAsErrors)
}

func init() {
	validateCmd.Flags().String("format", "text", "report format: text, json or yaml")
	validateCmd.Flags().Bool("strict", false, "treat warnings as errors")

	rootCmd.AddCommand(validateCmd)
}
