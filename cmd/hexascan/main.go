// Command hexascan scans ancient Greek dactylic hexameter verse for its
// metrical scansion and primary caesura, and ports the small corpus
// toolchain around it: betacode conversion, TEI annotation, and a Solr
// index/search pair.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     config
	log     zerolog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hexascan",
		Short:         "Scan ancient Greek dactylic hexameter verse",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
			log = newLogger(cfg.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "hexascan.yaml", "path to config file")

	root.AddCommand(newScanCmd())
	root.AddCommand(newTEICmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newIndexCmd())
	root.AddCommand(newSearchCmd())
	return root
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
		Level(parsed).
		With().Timestamp().Logger()
}
