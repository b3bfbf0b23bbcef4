// Package merge aligns a final NFA scansion string back onto the cluster
// sequence it was derived from.
package merge

import (
	"errors"

	"github.com/boxesandglue/hexascan/internal/prosody"
)

// ErrMisaligned is returned when the scansion string and the cluster
// sequence cannot be aligned: a vowel cluster remains after the scansion
// string is used up, or a non-boundary scansion character remains after
// the clusters are used up. This signals an internal bug; callers should
// treat it as an empty result, never propagate it to the analysis output.
var ErrMisaligned = errors.New("merge: scansion and clusters misaligned")

// Aligned is one step of the merged sequence: a cluster's text paired with
// its preliminary tag and final scan symbol. Foot-boundary steps carry
// empty ClusterText and PrelimTag and Scan == "|".
type Aligned struct {
	ClusterText string
	PrelimTag   prosody.Tag
	Scan        string
}

// Merge aligns scansion against entries using a two-cursor walk: one cursor
// over the clusters, one over the scansion string, advancing whichever
// side the current symbol calls for.
func Merge(entries []prosody.Entry, scansion string) ([]Aligned, error) {
	var out []Aligned
	ci, si := 0, 0

	for ci < len(entries) || si < len(scansion) {
		if si < len(scansion) && scansion[si] == '|' {
			out = append(out, Aligned{Scan: "|"})
			si++
			continue
		}

		if ci < len(entries) && entries[ci].Tag.IsVowelTag() {
			if si >= len(scansion) {
				return nil, ErrMisaligned
			}
			out = append(out, Aligned{
				ClusterText: entries[ci].Cluster.Text(),
				PrelimTag:   entries[ci].Tag,
				Scan:        string(scansion[si]),
			})
			ci++
			si++
			continue
		}

		if ci < len(entries) {
			// Non-vowel cluster: passes through untagged.
			out = append(out, Aligned{ClusterText: entries[ci].Cluster.Text()})
			ci++
			continue
		}

		// No clusters left but scansion chars remain and the next one
		// isn't a foot boundary: clusters and scansion have desynced.
		return nil, ErrMisaligned
	}

	return out, nil
}
