package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/hexascan/solrindex"
	"github.com/boxesandglue/hexascan/tei"
)

// newIndexCmd ports index_tei.py: read each annotated TEI file, recover
// its book/line identity, and push every line to Solr.
func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <file>...",
		Short: "Push annotated TEI lines to Solr",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := solrindex.NewClient(cfg.SolrURL)
			for _, fname := range args {
				if err := indexFile(cmd.Context(), client, fname); err != nil {
					log.Warn().Err(err).Str("file", fname).Msg("failed to index file")
				}
			}
			return nil
		},
	}
	return cmd
}

func indexFile(ctx context.Context, client *solrindex.Client, fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return fmt.Errorf("hexascan index: %w", err)
	}
	defer f.Close()

	doc, err := tei.Read(f)
	if err != nil {
		return fmt.Errorf("hexascan index: %w", err)
	}

	log.Info().Str("work", doc.WorkName).Str("file", fname).Msg("indexing file")

	lines := doc.Lines()
	docs := make([]solrindex.LineDoc, 0, len(lines))
	for _, l := range lines {
		lineDoc := solrindex.LineDoc{
			LineID:   solrindex.NewLineID(doc.WorkAbbrev, l.Book, l.Number),
			WorkName: doc.WorkName,
			BookNum:  l.Book,
			LineNum:  l.Number,
			LineText: l.Text,
		}
		for _, r := range l.Results {
			lineDoc.Scansion = append(lineDoc.Scansion, r.Scansion)
		}
		if len(l.Results) > 0 && len(l.Results[0].Parts) == 2 {
			lineDoc.BeforeCaesura = l.Results[0].Parts[0]
			lineDoc.AfterCaesura = l.Results[0].Parts[1]
		}
		docs = append(docs, lineDoc)
	}

	if err := client.Add(ctx, docs); err != nil {
		return fmt.Errorf("hexascan index: %w", err)
	}
	log.Info().Int("lines", len(docs)).Str("file", fname).Msg("indexed file")
	return nil
}
