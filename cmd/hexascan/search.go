package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/hexascan/solrindex"
)

// newSearchCmd ports find_words.py: query Solr for lines containing every
// given word and print them page by page.
func newSearchCmd() *cobra.Command {
	const rows = 10
	cmd := &cobra.Command{
		Use:   "search <word>...",
		Short: "Search the indexed corpus for lines containing words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := solrindex.NewClient(cfg.SolrURL)
			ctx := cmd.Context()

			start := 0
			first, err := client.Search(ctx, args, start, rows)
			if err != nil {
				return fmt.Errorf("hexascan search: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d hits:\n", first.NumFound)

			page := first
			for len(page.Docs) > 0 {
				for _, doc := range page.Docs {
					for _, row := range solrindex.FormatHit(doc) {
						fmt.Fprintln(cmd.OutOrStdout(), row)
					}
				}
				start += rows
				if start >= page.NumFound {
					break
				}
				page, err = client.Search(ctx, args, start, rows)
				if err != nil {
					return fmt.Errorf("hexascan search: %w", err)
				}
			}
			return nil
		},
	}
	return cmd
}
