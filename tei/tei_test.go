package tei

import (
	"strings"
	"testing"

	"github.com/boxesandglue/hexascan"
)

const fixture = `<TEI.2>
<teiHeader><fileDesc><titleStmt><title>Iliad</title></titleStmt></fileDesc></teiHeader>
<text><body>
<div1 type="Book" n="1">
<l>νη νη νη νη νη νη νη νη νη νη νη νη</l>
<l n="5">νη νη νη νη νη νη νη νη νη νη νη νη</l>
</div1>
</body></text>
</TEI.2>`

func TestReadIdentifiesWork(t *testing.T) {
	doc, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.WorkName != "Iliad" || doc.WorkAbbrev != "Il" {
		t.Errorf("WorkName/Abbrev = %q/%q, want Iliad/Il", doc.WorkName, doc.WorkAbbrev)
	}
}

func TestLinesRecoversBookAndNumber(t *testing.T) {
	doc, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	lines := doc.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Book != "1" || lines[0].Number != 1 {
		t.Errorf("lines[0] = %+v, want book 1 line 1 (implicit counter)", lines[0])
	}
	if lines[1].Book != "1" || lines[1].Number != 5 {
		t.Errorf("lines[1] = %+v, want book 1 line 5 (explicit n attribute)", lines[1])
	}
	if lines[0].LineID("Il") != "Il.1.1" {
		t.Errorf("LineID() = %q, want %q", lines[0].LineID("Il"), "Il.1.1")
	}
}

func TestLinesRecoversAnnotatedScansionAndCaesura(t *testing.T) {
	annotated, report, err := Annotate([]byte(fixture), hexascan.DefaultFallbackCost)
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if report.Scanned+report.MultiMatch == 0 {
		t.Fatal("expected at least one line to scan")
	}

	doc, err := Read(strings.NewReader(string(annotated)))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	lines := doc.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}

	for _, l := range lines {
		if len(l.Results) == 0 {
			t.Fatalf("line %+v has no recovered Results", l)
		}
		if l.Scansion() == "" {
			t.Errorf("line %+v Scansion() = %q, want non-empty", l, l.Scansion())
		}
		if len(l.Results[0].Parts) != 2 {
			t.Fatalf("line %+v Results[0].Parts = %v, want a 2-part caesura split", l, l.Results[0].Parts)
		}
		before, after := l.Results[0].Parts[0], l.Results[0].Parts[1]
		if before+after != l.Text {
			t.Errorf("before+after = %q, want line text %q", before+after, l.Text)
		}
	}
}

func TestAnnotateInsertsRealAttrAndCaesura(t *testing.T) {
	out, report, err := Annotate([]byte(fixture), hexascan.DefaultFallbackCost)
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if report.Total != 2 {
		t.Fatalf("report.Total = %d, want 2", report.Total)
	}
	if !strings.Contains(string(out), `real="`) {
		t.Errorf("Annotate() output missing real= attribute:\n%s", out)
	}
	if !strings.Contains(string(out), "<caesura/>") {
		t.Errorf("Annotate() output missing <caesura/>:\n%s", out)
	}
}
