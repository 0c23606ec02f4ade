// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the vocabulary as Turtle, JSON or YAML",
	Long: `Export writes the merged vocabulary without generating pages. The ttl
format writes the graph with the publication base and prefixes; json and yaml
write the concept index (identity, reference, label, URL, aliases and
definition) and refresh the search index.

Use --output - to write to standard output.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, store, err := openGenerator(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "ttl", "":
		v, err := gen.Load(ctx)
		if err != nil {
			return err
		}
		if output == "" {
			output = "begrippenkader.ttl"
		}
		if output == "-" {
			w := bufio.NewWriter(os.Stdout)
			if err := gen.WriteTurtle(w, v); err != nil {
				return err
			}
			return w.Flush()
		}
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrapf(err, "creating %s", output)
		}
		if err := gen.WriteTurtle(f, v); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	case "json", "yaml":
		if _, err := gen.Reindex(ctx); err != nil {
			return err
		}
		if output == "-" {
			return store.WriteExport(ctx, os.Stdout, format)
		}
		if output == "" {
			output = "export." + format
		}
		if format == "json" {
			err = store.ExportJSON(ctx, output)
		} else {
			err = store.ExportYAML(ctx, output)
		}
		if err != nil {
			return err
		}
	default:
		return errors.Newf("unsupported format %q: use ttl, json or yaml", format)
	}

	if output != "-" {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", output)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("format", "ttl", "export format: ttl, json or yaml")
	exportCmd.Flags().StringP("output", "o", "", "output file (default begrippenkader.ttl or export.<format>)")

	rootCmd.AddCommand(exportCmd)
}
