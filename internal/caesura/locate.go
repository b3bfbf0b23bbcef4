// Package caesura locates the primary caesura: the first word boundary
// strictly inside foot 3 or later, and splits the line text there.
package caesura

import "github.com/boxesandglue/hexascan/internal/merge"

// Locate returns the index into aligned of the caesura cluster, and false
// if no caesura is found. It is specific to hexameter and does not model
// bucolic diaeresis or a hephthemimeral/penthemimeral preference: it
// simply returns the first admissible word boundary from foot 3 onward.
func Locate(aligned []merge.Aligned) (int, bool) {
	foot := 1
	footBoundary := true

	for i, a := range aligned {
		switch {
		case a.Scan == "|":
			foot++
			footBoundary = true
			continue
		case a.Scan != "":
			footBoundary = false
		}

		if containsSpace(a.ClusterText) {
			if foot >= 3 && !footBoundary {
				return i, true
			}
		}
	}
	return 0, false
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

// Split partitions the line reconstructed from aligned at the caesura
// index. The caesura cluster's text before and including its first space
// attaches to the "before" half; text after the space attaches to the
// "after" half. A caesura cluster with no space (pure punctuation) attaches
// entirely to "before".
func Split(aligned []merge.Aligned, idx int) (before, after string) {
	var b, a string
	for i, entry := range aligned {
		if entry.Scan == "|" {
			continue
		}
		switch {
		case i < idx:
			b += entry.ClusterText
		case i == idx:
			pre, post, found := splitAtSpace(entry.ClusterText)
			b += pre
			if found {
				a += post
			} else {
				// No space in this cluster: the whole thing precedes
				// the caesura.
			}
		default:
			a += entry.ClusterText
		}
	}
	return b, a
}

// splitAtSpace splits s at its first space, keeping the space itself on
// the "before" side.
func splitAtSpace(s string) (before, after string, found bool) {
	for i, r := range s {
		if r == ' ' {
			return s[:i+1], s[i+1:], true
		}
	}
	return s, "", false
}

// SplitOriginal splits original -- the pre-normalization line text Analyze
// was called with -- at the same caesura point Split would use, instead of
// reconstructing the line from aligned's NFD-decomposed, lowercased cluster
// text. It relies on U+0020 being untouched by NFD normalization and
// case-folding, so the Nth space in aligned's text is also the Nth space in
// original, in the same relative order; counting that ordinal and then
// splitting original directly preserves the caller's original casing and
// composed accents in the returned halves.
func SplitOriginal(aligned []merge.Aligned, idx int, original string) (before, after string) {
	ordinal := 0
	for i, entry := range aligned {
		if entry.Scan == "|" {
			continue
		}
		if i < idx {
			for _, r := range entry.ClusterText {
				if r == ' ' {
					ordinal++
				}
			}
			continue
		}
		for _, r := range entry.ClusterText {
			if r == ' ' {
				ordinal++
				break
			}
		}
		break
	}

	seen := 0
	for i, r := range original {
		if r == ' ' {
			seen++
			if seen == ordinal {
				return original[:i+1], original[i+1:]
			}
		}
	}
	return original, ""
}
