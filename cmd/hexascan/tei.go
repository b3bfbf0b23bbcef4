package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/hexascan/tei"
)

// newTEICmd ports scan.py's process_tei_file: annotate each <l> in the
// given TEI files with its scansion and caesura split, writing the
// annotated document back out, and log each file's line counts.
func newTEICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tei <file>...",
		Short: "Annotate TEI hexameter files with scansion and caesura",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, fname := range args {
				if err := annotateFile(fname); err != nil {
					log.Warn().Err(err).Str("file", fname).Msg("failed to annotate file")
				}
			}
			return nil
		},
	}
	return cmd
}

func annotateFile(fname string) error {
	src, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("hexascan tei: %w", err)
	}

	out, report, err := tei.Annotate(src, cfg.ShortFallbackCost)
	if err != nil {
		return fmt.Errorf("hexascan tei: annotate %s: %w", fname, err)
	}

	if err := os.WriteFile(fname, out, 0o644); err != nil {
		return fmt.Errorf("hexascan tei: write %s: %w", fname, err)
	}

	log.Info().
		Str("file", fname).
		Int("total", report.Total).
		Int("scanned", report.Scanned).
		Int("no_match", report.NoMatch).
		Int("multi_match", report.MultiMatch).
		Msg("annotated file")
	return nil
}
