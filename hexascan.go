// Package hexascan scans lines of ancient Greek dactylic hexameter verse
// and produces a prosodic analysis: a cost-ranked set of scansions and the
// location of the primary caesura.
//
// Analyze wires the classifier, glyph/cluster builder, prosodic analyzer,
// NFA search, merger, and caesura locator behind one entry point, the way a
// shaping pipeline chains normalization, substitution, and positioning
// behind a single call.
package hexascan

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/boxesandglue/hexascan/internal/caesura"
	"github.com/boxesandglue/hexascan/internal/glyph"
	"github.com/boxesandglue/hexascan/internal/merge"
	"github.com/boxesandglue/hexascan/internal/prosody"
	"github.com/boxesandglue/hexascan/internal/scansion"
)

// Result is one minimum-cost scansion of a line: the scansion string and
// the line partitioned at the primary caesura. Parts has length 2
// ([before, after]) when a caesura was found, or length 1 (the whole line)
// when it was not.
type Result struct {
	Scansion string
	Parts    []string
}

// DefaultFallbackCost is the weight Analyze gives to reading a short
// syllable as long when no ordinary reading lets a line scan. Higher values
// make the search favor that reading less; hexascan.yaml's
// short_fallback_cost setting overrides it for the CLI.
const DefaultFallbackCost = scansion.DefaultFallbackCost

// Analyze runs the full pipeline over one line of text and returns every
// minimum-cost scansion paired with its caesura split. Returns nil if the
// line has no vowels, or if no accepting scansion exists for its syllable
// pattern. It is equivalent to AnalyzeWithFallbackCost(line, DefaultFallbackCost).
func Analyze(line string) []Result {
	return AnalyzeWithFallbackCost(line, DefaultFallbackCost)
}

// AnalyzeWithFallbackCost is Analyze with an explicit short-as-long
// fallback cost, for callers that expose the setting to configuration.
func AnalyzeWithFallbackCost(line string, fallbackCost int) []Result {
	normalized := strings.ToLower(norm.NFD.String(line))

	runes := []rune(normalized)
	glyphs := glyph.BuildGlyphs(runes)
	clusters := glyph.BuildClusters(glyphs)
	entries := prosody.Analyze(clusters)

	tags := make([]prosody.Tag, 0, len(entries))
	for _, e := range entries {
		if e.Tag.IsVowelTag() {
			tags = append(tags, e.Tag)
		}
	}

	matches := scansion.Search(tags, fallbackCost)
	if len(matches) == 0 {
		return nil
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		aligned, err := merge.Merge(entries, m.Scansion)
		if err != nil {
			// Alignment invariant violation: treat as an internal bug,
			// never surface it to the caller.
			continue
		}

		idx, found := caesura.Locate(aligned)
		if !found {
			results = append(results, Result{Scansion: m.Scansion, Parts: []string{line}})
			continue
		}

		// Split the caller's original text, not the NFD-decomposed,
		// lowercased working copy, so Parts keeps the caller's casing
		// and composed accents (caesura.Split operates on the working
		// copy and exists for internal/caesura's own tests).
		before, after := caesura.SplitOriginal(aligned, idx, line)
		results = append(results, Result{Scansion: m.Scansion, Parts: []string{before, after}})
	}
	return results
}

// Join joins multiple scansions the way ambiguous lines are reported
// downstream, in TEI annotations and search results alike: " OR "-separated.
func Join(results []Result) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Scansion
	}
	return strings.Join(parts, " OR ")
}
