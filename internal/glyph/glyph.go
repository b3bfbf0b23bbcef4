package glyph

import "strings"

// A Glyph is a base letter (consonant or vowel) followed by zero or more
// attached diacritical code points. Glyphs are assembled by a left-to-right
// fold over NFD-decomposed, lowercased runes: a non-diacritical rune opens
// a new glyph, a diacritical rune attaches to the glyph in progress. This
// mirrors the mark-attachment pass of a text shaper, which groups combining
// marks with their base glyph before any positioning happens; here the
// grouping happens once, up front, over plain runes.
type Glyph struct {
	Base  rune
	Marks []rune
}

// Class returns the CharClass of the glyph's base letter. Diacriticals
// never start a glyph, so a Glyph's class is always Consonant, Vowel, or
// Other (for non-Greek text passed through unclassified).
func (g Glyph) Class() CharClass {
	return Classify(g.Base)
}

// HasMark reports whether the glyph carries the named combining mark.
func (g Glyph) HasMark(mark rune) bool {
	for _, m := range g.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// String reconstructs the glyph's text: base letter followed by its marks
// in the order they were attached.
func (g Glyph) String() string {
	var b strings.Builder
	b.WriteRune(g.Base)
	for _, m := range g.Marks {
		b.WriteRune(m)
	}
	return b.String()
}

// BuildGlyphs folds a rune slice into glyphs. Input must already be
// NFD-decomposed and lowercased by the caller (Analyze does this at the
// entry point); a leading diacritical with no preceding base is dropped,
// since the caller is expected to supply well-formed text.
func BuildGlyphs(runes []rune) []Glyph {
	glyphs := make([]Glyph, 0, len(runes))
	for _, r := range runes {
		if Classify(r) == Diacritical {
			if len(glyphs) == 0 {
				// Malformed input: diacritical with no base. Drop it
				// rather than fail the whole line.
				continue
			}
			last := &glyphs[len(glyphs)-1]
			last.Marks = append(last.Marks, r)
			continue
		}
		glyphs = append(glyphs, Glyph{Base: r})
	}
	return glyphs
}
