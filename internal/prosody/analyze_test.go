package prosody

import (
	"testing"

	"github.com/boxesandglue/hexascan/internal/glyph"
)

func cluster(class glyph.CharClass, bases ...rune) glyph.Cluster {
	glyphs := make([]glyph.Glyph, len(bases))
	for i, b := range bases {
		glyphs[i] = glyph.Glyph{Base: b}
	}
	return glyph.Cluster{Class: class, Glyphs: glyphs}
}

func vowel(base rune, marks ...rune) glyph.Cluster {
	return glyph.Cluster{Class: glyph.Vowel, Glyphs: []glyph.Glyph{{Base: base, Marks: marks}}}
}

func other(text string) glyph.Cluster {
	glyphs := make([]glyph.Glyph, 0, len(text))
	for _, r := range text {
		glyphs = append(glyphs, glyph.Glyph{Base: r})
	}
	return glyph.Cluster{Class: glyph.Other, Glyphs: glyphs}
}

func TestAnalyzeNaturalLength(t *testing.T) {
	// Each vowel is analyzed on its own: adjacent vowel clusters would
	// trigger synizesis on the epsilon and hide its natural length.
	clusters := []glyph.Cluster{vowel('ε'), vowel('η'), vowel('α')}
	want := []Tag{Short, Long, Indeterminate}
	for i, c := range clusters {
		e := Analyze([]glyph.Cluster{c})[0]
		if e.Tag != want[i] {
			t.Errorf("entries[%d].Tag = %v, want %v", i, e.Tag, want[i])
		}
	}
}

func TestAnalyzeDiphthongIsLong(t *testing.T) {
	diph := glyph.Cluster{Class: glyph.Vowel, Glyphs: []glyph.Glyph{{Base: 'α'}, {Base: 'ι'}}}
	entries := Analyze([]glyph.Cluster{diph})
	if entries[0].Tag != Long {
		t.Errorf("Tag = %v, want Long", entries[0].Tag)
	}
}

func TestAnalyzeCircumflexForcesLong(t *testing.T) {
	entries := Analyze([]glyph.Cluster{vowel('α', glyph.Circumflex)})
	if entries[0].Tag != Long {
		t.Errorf("Tag = %v, want Long", entries[0].Tag)
	}
}

func TestAnalyzePositionalLengthening(t *testing.T) {
	// alpha followed by two consonants: position makes it long.
	clusters := []glyph.Cluster{
		vowel('α'),
		cluster(glyph.Consonant, 'σ', 'τ'),
		vowel('η'),
	}
	entries := Analyze(clusters)
	if entries[0].Tag != Long {
		t.Errorf("Tag = %v, want Long (positional lengthening)", entries[0].Tag)
	}
}

func TestAnalyzeSingleConsonantDoesNotLengthen(t *testing.T) {
	clusters := []glyph.Cluster{
		vowel('α'),
		cluster(glyph.Consonant, 'τ'),
		vowel('η'),
	}
	entries := Analyze(clusters)
	if entries[0].Tag != Indeterminate {
		t.Errorf("Tag = %v, want Indeterminate", entries[0].Tag)
	}
}

func TestAnalyzeLongConsonantCountsDouble(t *testing.T) {
	clusters := []glyph.Cluster{
		vowel('α'),
		cluster(glyph.Consonant, 'ξ'),
		vowel('η'),
	}
	entries := Analyze(clusters)
	if entries[0].Tag != Long {
		t.Errorf("Tag = %v, want Long (xi counts double)", entries[0].Tag)
	}
}

func TestAnalyzeRhoAfterConsonantDoesNotMakePosition(t *testing.T) {
	// sigma + rho: rho follows a consonant within the run, so it does not
	// add to the count (the documented rho irregularity).
	clusters := []glyph.Cluster{
		vowel('α'),
		cluster(glyph.Consonant, 'σ', 'ρ'),
		vowel('η'),
	}
	entries := Analyze(clusters)
	if entries[0].Tag != Indeterminate {
		t.Errorf("Tag = %v, want Indeterminate (sigma=1, rho doesn't count)", entries[0].Tag)
	}
}

func TestAnalyzeLeadingRhoDoesCount(t *testing.T) {
	// rho as the first consonant in the run does count (only a rho that
	// follows another consonant is skipped).
	clusters := []glyph.Cluster{
		vowel('α'),
		cluster(glyph.Consonant, 'ρ'),
		cluster(glyph.Consonant, 'τ'),
		vowel('η'),
	}
	entries := Analyze(clusters)
	if entries[0].Tag != Long {
		t.Errorf("Tag = %v, want Long (rho + tau = 2)", entries[0].Tag)
	}
}

func TestAnalyzeCorreption(t *testing.T) {
	// Long vowel at word end, followed by a vowel-initial next word:
	// correption demotes it to LongCorreption, not a full Short.
	clusters := []glyph.Cluster{vowel('η'), other(" "), vowel('α')}
	entries := Analyze(clusters)
	if entries[0].Tag != LongCorreption {
		t.Errorf("Tag = %v, want LongCorreption", entries[0].Tag)
	}
}

func TestAnalyzeIndeterminateCorreption(t *testing.T) {
	clusters := []glyph.Cluster{vowel('α'), other(" "), vowel('ε')}
	entries := Analyze(clusters)
	if entries[0].Tag != IndeterminateCorreption {
		t.Errorf("Tag = %v, want IndeterminateCorreption", entries[0].Tag)
	}
}

func TestAnalyzeShortVowelUnaffectedByCorreption(t *testing.T) {
	clusters := []glyph.Cluster{vowel('ε'), other(" "), vowel('α')}
	entries := Analyze(clusters)
	if entries[0].Tag != Short {
		t.Errorf("Tag = %v, want Short (correption never applies to a Short)", entries[0].Tag)
	}
}

func TestAnalyzeSynizesis(t *testing.T) {
	// unaccented epsilon directly followed (same word) by a vowel.
	clusters := []glyph.Cluster{vowel('ε'), vowel('ω')}
	entries := Analyze(clusters)
	if entries[0].Tag != ShortSynizesis {
		t.Errorf("Tag = %v, want ShortSynizesis", entries[0].Tag)
	}
}

func TestAnalyzeSynizesisWithAcute(t *testing.T) {
	clusters := []glyph.Cluster{vowel('ε', glyph.Acute), vowel('ω')}
	entries := Analyze(clusters)
	if entries[0].Tag != ShortSynizesis {
		t.Errorf("Tag = %v, want ShortSynizesis", entries[0].Tag)
	}
}

func TestAnalyzeSynizesisNotCandidateForOtherVowels(t *testing.T) {
	// alpha directly followed by another vowel is not a synizesis
	// candidate (only unaccented/acute epsilon is).
	clusters := []glyph.Cluster{vowel('α'), vowel('ω')}
	entries := Analyze(clusters)
	if entries[0].Tag == ShortSynizesis {
		t.Errorf("Tag = %v, want not ShortSynizesis", entries[0].Tag)
	}
}

func TestAnalyzeNonVowelClustersGetNoneTag(t *testing.T) {
	clusters := []glyph.Cluster{cluster(glyph.Consonant, 'σ'), other(" ")}
	entries := Analyze(clusters)
	for i, e := range entries {
		if e.Tag != None {
			t.Errorf("entries[%d].Tag = %v, want None", i, e.Tag)
		}
	}
}
