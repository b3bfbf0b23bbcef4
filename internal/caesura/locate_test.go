package caesura

import (
	"strings"
	"testing"

	"github.com/boxesandglue/hexascan/internal/merge"
)

func syl(text, scan string) merge.Aligned {
	return merge.Aligned{ClusterText: text, Scan: scan}
}

func bound() merge.Aligned {
	return merge.Aligned{Scan: "|"}
}

func plain(text string) merge.Aligned {
	return merge.Aligned{ClusterText: text}
}

// buildFeet assembles n feet, each two syllables with an internal space,
// separated by foot-boundary markers -- the same shape as the spondaic
// trace used in the root package's TestAnalyzeSpondaicLineWithCaesura.
func buildFeet(n int) []merge.Aligned {
	var out []merge.Aligned
	for i := 0; i < n; i++ {
		out = append(out, plain("ν"), syl("η", "+"), plain(" "), plain("ν"), syl("η", "+"))
		if i < n-1 {
			out = append(out, bound())
		}
	}
	return out
}

func TestLocateFindsFirstSpaceAtOrAfterFootThree(t *testing.T) {
	aligned := buildFeet(6)
	idx, found := Locate(aligned)
	if !found {
		t.Fatal("Locate() found = false, want true")
	}
	if aligned[idx].ClusterText != " " {
		t.Fatalf("Locate() landed on %+v, want a space cluster", aligned[idx])
	}
}

func TestLocateNoSpaceNoResult(t *testing.T) {
	aligned := []merge.Aligned{syl("η", "+"), bound(), syl("η", "+")}
	if _, found := Locate(aligned); found {
		t.Fatal("Locate() found = true, want false (no spaces at all)")
	}
}

func TestLocateSkipsSpacesBeforeFootThree(t *testing.T) {
	// Only 2 feet: the internal spaces of feet 1-2 must never be reported.
	aligned := buildFeet(2)
	if _, found := Locate(aligned); found {
		t.Fatal("Locate() found = true, want false (foot < 3)")
	}
}

func TestSplitReconstructsLine(t *testing.T) {
	aligned := buildFeet(6)
	idx, found := Locate(aligned)
	if !found {
		t.Fatal("expected a caesura")
	}
	before, after := Split(aligned, idx)
	var want string
	for _, a := range aligned {
		if a.Scan != "|" {
			want += a.ClusterText
		}
	}
	if before+after != want {
		t.Errorf("before+after = %q, want %q", before+after, want)
	}
	if len(before) == 0 || len(after) == 0 {
		t.Errorf("before = %q, after = %q, want both non-empty", before, after)
	}
}

func TestSplitOriginalPreservesCasingAndAccents(t *testing.T) {
	aligned := buildFeet(6)
	idx, found := Locate(aligned)
	if !found {
		t.Fatal("expected a caesura")
	}

	var plainText string
	for _, a := range aligned {
		if a.Scan != "|" {
			plainText += a.ClusterText
		}
	}

	// original has the same space positions as plainText (so the caesura
	// falls at the same place) but a capital first letter and an accented
	// vowel later on -- text aligned's NFD-decomposed, lowercased clusters
	// no longer carry. SplitOriginal must still find the right split and
	// return original's own bytes, not aligned's.
	runes := []rune(plainText)
	runes[0] = 'Ν'
	runes[len(runes)-1] = 'ή'
	original := string(runes)

	before, after := SplitOriginal(aligned, idx, original)
	if before+after != original {
		t.Errorf("before+after = %q, want %q", before+after, original)
	}
	if !strings.HasPrefix(before, "Ν") {
		t.Errorf("before = %q, want it to keep the capital original start", before)
	}
	if !strings.HasSuffix(after, "ή") {
		t.Errorf("after = %q, want it to keep the accented original end", after)
	}
}
