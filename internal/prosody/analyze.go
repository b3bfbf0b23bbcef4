package prosody

import "github.com/boxesandglue/hexascan/internal/glyph"

// Entry pairs a cluster with its preliminary syllable tag. Non-vowel
// clusters carry Tag None.
type Entry struct {
	Cluster glyph.Cluster
	Tag     Tag
}

// naturalLength gives each vowel's length by nature: epsilon and omicron
// are short, eta and omega long, alpha/iota/upsilon indeterminate (their
// length varies word to word and has to be looked up, not computed).
// Diphthongs are long regardless of this table (checked separately, since
// a diphthong has two base letters).
var naturalLength = map[rune]Tag{
	'ε': Short,
	'ο': Short,
	'η': Long,
	'ω': Long,
	'α': Indeterminate,
	'ι': Indeterminate,
	'υ': Indeterminate,
}

// synizesisCandidate reports whether c is one of the two vowel shapes that
// can contract with a following vowel in the same word: unaccented epsilon,
// or epsilon with an acute.
func synizesisCandidate(c glyph.Cluster) bool {
	if c.Class != glyph.Vowel || len(c.Glyphs) != 1 {
		return false
	}
	g := c.Glyphs[0]
	if g.Base != 'ε' {
		return false
	}
	switch len(g.Marks) {
	case 0:
		return true
	case 1:
		return g.Marks[0] == glyph.Acute
	default:
		return false
	}
}

// Analyze computes the preliminary length tag for every cluster in order,
// applying five rules in sequence: natural length, circumflex override,
// positional lengthening, correption, synizesis. Each later rule may
// override an earlier one; synizesis is applied last and wins over any
// prior lengthening.
func Analyze(clusters []glyph.Cluster) []Entry {
	entries := make([]Entry, len(clusters))
	for i, c := range clusters {
		entries[i] = Entry{Cluster: c, Tag: None}
		if c.Class != glyph.Vowel {
			continue
		}
		entries[i].Tag = tagFor(clusters, i)
	}
	return entries
}

func tagFor(clusters []glyph.Cluster, i int) Tag {
	c := clusters[i]

	tag := natural(c)

	if c.HasMark(glyph.Circumflex) {
		tag = Long
	}

	if followedByMultipleConsonants(clusters, i) {
		tag = Long
	}

	if followedByVowelInNextWord(clusters, i) {
		switch tag {
		case Long:
			tag = LongCorreption
		case Indeterminate:
			tag = IndeterminateCorreption
		}
	}

	if synizesisCandidate(c) && followedByVowelInSameWord(clusters, i) {
		tag = ShortSynizesis
	}

	return tag
}

func natural(c glyph.Cluster) Tag {
	if c.BaseLetterCount() > 1 {
		// Diphthong: long by nature.
		return Long
	}
	base := c.Glyphs[0].Base
	if t, ok := naturalLength[base]; ok {
		return t
	}
	return Indeterminate
}

// followedByMultipleConsonants scans forward from i, skipping Other
// clusters, stopping at the first vowel cluster, and summing consonant
// weight: long consonants (zeta, xi, psi) count 2, a rho that is not the
// first consonant encountered counts 0 (a known irregularity, preserved
// as-is rather than "corrected"), everything else counts 1. A total >= 2
// triggers lengthening.
func followedByMultipleConsonants(clusters []glyph.Cluster, i int) bool {
	count := 0
	seenConsonant := false
	for j := i + 1; j < len(clusters); j++ {
		c := clusters[j]
		switch c.Class {
		case glyph.Vowel:
			return false
		case glyph.Consonant:
			for _, g := range c.Glyphs {
				switch {
				case glyph.IsLongConsonant(g.Base):
					count += 2
				case seenConsonant && g.Base == glyph.Rho:
					// rho after another consonant in this run doesn't
					// make position; intentionally not counted.
				default:
					count++
				}
				seenConsonant = true
			}
			if count > 1 {
				return true
			}
		}
		// Other clusters (space, punctuation) are skipped.
	}
	return false
}

// followedByVowelInNextWord requires an Other cluster (word boundary)
// immediately followed by a vowel cluster.
func followedByVowelInNextWord(clusters []glyph.Cluster, i int) bool {
	if i+2 >= len(clusters) {
		return false
	}
	return clusters[i+1].Class == glyph.Other && clusters[i+2].Class == glyph.Vowel
}

// followedByVowelInSameWord requires the immediately next cluster (no
// intervening Other) to be a vowel.
func followedByVowelInSameWord(clusters []glyph.Cluster, i int) bool {
	if i+1 >= len(clusters) {
		return false
	}
	return clusters[i+1].Class == glyph.Vowel
}
