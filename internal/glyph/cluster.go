package glyph

import "strings"

// diphthongs lists the ordered base-vowel pairs that combine into a single
// long vowel cluster.
var diphthongs = map[[2]rune]bool{
	{'α', 'ι'}: true,
	{'α', 'υ'}: true,
	{'ε', 'ι'}: true,
	{'ε', 'υ'}: true,
	{'η', 'υ'}: true,
	{'ο', 'ι'}: true,
	{'ο', 'υ'}: true,
	{'υ', 'ι'}: true,
}

func isDiphthong(base1, base2 rune) bool {
	return diphthongs[[2]rune{base1, base2}]
}

// A Cluster is a maximal run of glyphs of the same CharClass, with one
// exception: a vowel cluster may hold at most two glyphs, and only when
// they form a recognized diphthong.
type Cluster struct {
	Class  CharClass
	Glyphs []Glyph
}

// Text reconstructs the cluster's source text.
func (c Cluster) Text() string {
	var b strings.Builder
	for _, g := range c.Glyphs {
		b.WriteString(g.String())
	}
	return b.String()
}

// BaseLetterCount is the number of base letters in the cluster, ignoring
// attached diacriticals. A diphthong vowel cluster has exactly 2; every
// other cluster that carries a syllable has exactly 1.
func (c Cluster) BaseLetterCount() int {
	return len(c.Glyphs)
}

// HasMark reports whether any glyph in the cluster carries the given mark.
func (c Cluster) HasMark(mark rune) bool {
	for _, g := range c.Glyphs {
		if g.HasMark(mark) {
			return true
		}
	}
	return false
}

// BuildClusters groups glyphs into clusters: a left-to-right fold that
// scans the glyph sequence and accumulates run boundaries, the way a
// syllable machine walks a category array, except here the run-boundary
// rule is data-driven (CharClass plus the diphthong table) rather than a
// compiled state machine, since the rule is a single two-glyph lookahead
// rather than a full grammar.
func BuildClusters(glyphs []Glyph) []Cluster {
	clusters := make([]Cluster, 0, len(glyphs))
	for _, g := range glyphs {
		if len(clusters) == 0 {
			clusters = append(clusters, Cluster{Class: g.Class(), Glyphs: []Glyph{g}})
			continue
		}

		cur := &clusters[len(clusters)-1]
		class := g.Class()
		if class != cur.Class {
			clusters = append(clusters, Cluster{Class: class, Glyphs: []Glyph{g}})
			continue
		}

		if class != Vowel {
			cur.Glyphs = append(cur.Glyphs, g)
			continue
		}

		// Vowel-vowel: only combine into a diphthong cluster.
		if canExtendDiphthong(*cur, g) {
			cur.Glyphs = append(cur.Glyphs, g)
			continue
		}
		clusters = append(clusters, Cluster{Class: class, Glyphs: []Glyph{g}})
	}
	return clusters
}

// canExtendDiphthong reports whether next should join cur rather than start
// a new cluster: only when cur is a single base vowel with no marks
// attached, the incoming glyph has no diaeresis (which always breaks a
// diphthong), and the base pair is a recognized diphthong.
func canExtendDiphthong(cur Cluster, next Glyph) bool {
	if len(cur.Glyphs) != 1 || len(cur.Glyphs[0].Marks) > 0 {
		return false
	}
	if next.HasMark(Diaeresis) {
		return false
	}
	return isDiphthong(cur.Glyphs[0].Base, next.Base)
}
