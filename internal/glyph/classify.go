// Package glyph implements the character classifier and glyph/cluster
// builder for Homeric hexameter scansion (stages C1-C2).
package glyph

// CharClass is the Unicode code point classification used to drive
// cluster assembly: a coarser alternative to Unicode's own General
// Category, collapsed to the four buckets the scansion grammar needs.
type CharClass uint8

const (
	// Other covers everything not in the Greek consonant/vowel/diacritical
	// set: space, punctuation, digits, Latin letters, and any unassigned
	// code point. Other clusters never carry a syllable tag.
	Other CharClass = iota
	Consonant
	Vowel
	Diacritical
)

func (c CharClass) String() string {
	switch c {
	case Consonant:
		return "Consonant"
	case Vowel:
		return "Vowel"
	case Diacritical:
		return "Diacritical"
	default:
		return "Other"
	}
}

// LongConsonants weigh 2 in the positional-lengthening count: zeta, xi, and
// psi are historically consonant clusters (zd, ks, ps) and make position
// on their own, without needing a following consonant.
var LongConsonants = map[rune]bool{
	'ζ': true,
	'ξ': true,
	'ψ': true,
}

// Rho is handled specially by the positional rule: a rho that follows
// another consonant after the vowel does not add to the count.
const Rho = 'ρ'

var consonants = []rune{
	'β', 'γ', 'δ', 'ζ', 'θ', 'κ', 'λ', 'μ',
	'ν', 'ξ', 'π', 'ρ', 'ς', 'σ', 'τ', 'φ',
	'χ', 'ψ', 'ϝ', 'ϲ',
}

var vowels = []rune{'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω'}

// diacriticals are combining marks; they only ever appear after NFD
// decomposition, never as precomposed base letters.
var diacriticals = []rune{
	'̓', // smooth breathing
	'̔', // rough breathing
	'́', // acute
	'͂', // circumflex
	'̀', // grave
	'̈', // diaeresis
	'ͅ', // iota subscript
	'̣', // dot below
}

// Named diacritical code points, used by the prosodic analyzer and cluster
// builder to test for specific marks rather than "any diacritical".
const (
	Circumflex = '͂'
	Diaeresis  = '̈'
	Acute      = '́'
)

var classTable = buildClassTable()

func buildClassTable() map[rune]CharClass {
	t := make(map[rune]CharClass, 2*(len(consonants)+len(vowels))+len(diacriticals))
	for _, r := range consonants {
		t[r] = Consonant
		t[upper(r)] = Consonant
	}
	for _, r := range vowels {
		t[r] = Vowel
		t[upper(r)] = Vowel
	}
	for _, r := range diacriticals {
		t[r] = Diacritical
	}
	return t
}

// upper uppercases a single Greek letter without pulling in unicode.ToUpper's
// full case-folding machinery; the classifier only ever sees already
// lowercased text (Analyze lowercases before classifying) but the table is
// built to recognize both cases defensively, matching scan.py's
// _CHAR_TYPE_MAP which registers both cases up front.
func upper(r rune) rune {
	if r >= 'α' && r <= 'ω' {
		return r - ('α' - 'Α')
	}
	return r
}

// Classify maps a single code point to its CharClass. Unknown code points
// -- ASCII space, punctuation, digits, Latin letters -- classify as Other.
func Classify(r rune) CharClass {
	if c, ok := classTable[r]; ok {
		return c
	}
	return Other
}

// IsLongConsonant reports whether r is one of the long consonants (zeta,
// xi, psi) that count double in the positional-lengthening rule.
func IsLongConsonant(r rune) bool {
	return LongConsonants[r]
}
