// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link [text]",
	Short: "Link vocabulary terms in a piece of text",
	Long: `Link applies the auto-linker to the given text, or to standard input when no
text is given, and prints the result. Use it to check which terms a
definition would link to before publishing.

  termsite link "Het laagtelwerk is onderdeel van de meter."
  termsite link --self Meter < definitie.txt`,
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	self, _ := cmd.Flags().GetString("self")
	showSpans, _ := cmd.Flags().GetBool("spans")

	text, err := linkInput(args, os.Stdin)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Linking.Enabled = true
	gen, store, err := openGenerator(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer store.Close()

	v, err := gen.Load(context.Background())
	if err != nil {
		return err
	}
	linker := gen.Linker(v)

	if showSpans {
		for _, s := range linker.Accepted(text, self) {
			fmt.Printf("%5d %5d  %-30s  %s\n", s.Start, s.End, text[s.Start:s.End], s.URL)
		}
		return nil
	}
	fmt.Print(linker.Link(text, self))
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}
	return nil
}

// linkInput returns the text to link: the arguments joined by spaces, or
// all of stdin when there are none.
func linkInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(data), nil
}

func init() {
	linkCmd.Flags().String("self", "", "label of the page the text belongs to; it is never linked")
	linkCmd.Flags().Bool("spans", false, "print the accepted matches instead of the linked text")

	rootCmd.AddCommand(linkCmd)
}
