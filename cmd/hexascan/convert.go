package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/hexascan/betacode"
)

// newConvertCmd ports betacode_to_unicode_tei.py: run all of the document's
// character data (not only the <l> line text) through the betacode
// converter in place, so a TEI file authored
// in ASCII betacode becomes one hexascan.Analyze (and hexascan tei) can
// read directly.
func newConvertCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a betacode-encoded TEI file to Unicode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("hexascan convert: %w", err)
			}
			converted, err := convertBetacodeTEI(src)
			if err != nil {
				return fmt.Errorf("hexascan convert: %w", err)
			}
			dest := out
			if dest == "" {
				dest = args[0]
			}
			if err := os.WriteFile(dest, converted, 0o644); err != nil {
				return fmt.Errorf("hexascan convert: write %s: %w", dest, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the converted file here instead of overwriting the input")
	return cmd
}

// convertBetacodeTEI walks the document's token stream and rewrites every
// run of character data, leaving tags and attributes untouched -- betacode
// only ever appears as line text, never as markup.
func convertBetacodeTEI(src []byte) ([]byte, error) {
	dec := xml.NewDecoder(strings.NewReader(string(src)))

	var out strings.Builder
	pos := int64(0)
	for {
		start := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			out.Write(src[pos:start])
			out.WriteString(betacode.Convert(string(cd)))
			pos = dec.InputOffset()
		}
	}
	out.Write(src[pos:])
	return []byte(out.String()), nil
}
