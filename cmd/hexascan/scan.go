package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/hexascan"
	"github.com/boxesandglue/hexascan/stats"
)

// newScanCmd ports scan.py's process_line_stream: read lines from stdin
// (or a file), scan each one, print the result, and report stats on exit.
func newScanCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan lines of hexameter from stdin or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("hexascan scan: %w", err)
				}
				defer f.Close()
				r = f
			}
			return runScan(r, os.Stdout, cmd.OutOrStderr())
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read lines from this file instead of stdin")
	return cmd
}

func runScan(r io.Reader, out io.Writer, statsOut io.Writer) error {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("hexascan scan: reading input: %w", err)
	}

	results := analyzeAll(lines, cfg.Workers, cfg.ShortFallbackCost)

	var counters stats.Counters
	for i, line := range lines {
		res := results[i]
		counters.Record(len(res))
		switch len(res) {
		case 0:
			fmt.Fprintf(out, "ERROR: Failed to scan: %s\n", line)
		default:
			fmt.Fprintln(out, hexascan.Join(res))
		}
	}
	counters.Report(statsOut)
	return nil
}
