// Package tei reads and annotates TEI-encoded hexameter texts, porting
// original_source/index_tei.py's book/line bookkeeping and
// original_source/scan.py's process_tei_file: walking <l> elements in
// document order, tracking the enclosing <div1 type="Book"> and each
// line's n attribute (or an implicit counter when it's absent), and
// writing back the annotated scansion and caesura split.
package tei

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/boxesandglue/hexascan"
)

// Line is one fully-identified hexameter line recovered from a TEI
// document: its book/line coordinates, raw text, and (once annotated) its
// scansion results.
type Line struct {
	Book    string
	Number  int
	Text    string
	Results []hexascan.Result
}

// LineID is the work-qualified identifier index_tei.py builds as
// "<abbrev>.<book>.<line>", e.g. "Il.1.1".
func (l Line) LineID(workAbbrev string) string {
	return fmt.Sprintf("%s.%s.%d", workAbbrev, l.Book, l.Number)
}

// Scansion joins a line's results the same " OR "-separated way the real=
// attribute and find_words.py's report both do.
func (l Line) Scansion() string {
	return hexascan.Join(l.Results)
}

// node is the minimal recursive TEI element needed to recover book/line
// structure and any real=/<caesura/> annotation already present, decoded
// with encoding/xml (the pack has no third-party XML library to reach for
// instead; see DESIGN.md).
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  []byte     `xml:",innerxml"`
	Children []node     `xml:",any"`
}

func (n node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Document is a parsed TEI file, holding enough of the tree to walk its <l>
// elements. It is read-only; Annotate does the rewriting on raw bytes.
type Document struct {
	WorkName   string
	WorkAbbrev string
	root       node
}

// Read parses a TEI document and identifies the work from its
// teiHeader/fileDesc/titleStmt/title, the same two titles index_tei.py
// recognizes.
func Read(r io.Reader) (*Document, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("tei: decode: %w", err)
	}
	name, abbrev := identifyWork(root)
	return &Document{WorkName: name, WorkAbbrev: abbrev, root: root}, nil
}

func identifyWork(root node) (string, string) {
	title := findTitle(root)
	switch {
	case strings.Contains(title, "Iliad"):
		return "Iliad", "Il"
	case strings.Contains(title, "Odyssey"):
		return "Odyssey", "Od"
	default:
		return "", ""
	}
}

func findTitle(n node) string {
	if n.XMLName.Local == "title" {
		return string(n.Content)
	}
	for _, c := range n.Children {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

// Lines walks the document in order, recovering each <l>'s book number
// (from the nearest preceding <div1 type="Book">) and line number (its own
// n attribute, or an incrementing counter reset at each new book), exactly
// as index_tei.py's index_file loop does.
func (d *Document) Lines() []Line {
	var lines []Line
	book := ""
	lineNum := 0
	walkLines(d.root, &book, &lineNum, &lines)
	return lines
}

func walkLines(n node, book *string, lineNum *int, lines *[]Line) {
	if n.XMLName.Local == "div1" {
		if t, ok := n.attr("type"); ok && t == "Book" {
			if b, ok := n.attr("n"); ok {
				*book = b
			}
			*lineNum = 0
		}
	}
	if n.XMLName.Local == "l" {
		if nStr, ok := n.attr("n"); ok {
			if v, err := strconv.Atoi(nStr); err == nil {
				*lineNum = v
			}
		} else {
			*lineNum++
		}
		text, before, after, hasCaesura := recoverLine(n)
		*lines = append(*lines, Line{
			Book:    *book,
			Number:  *lineNum,
			Text:    text,
			Results: recoverResults(n, text, before, after, hasCaesura),
		})
		return
	}
	for _, c := range n.Children {
		walkLines(c, book, lineNum, lines)
	}
}

// recoverLine concatenates an <l> element's text content, the Go analogue
// of ElementTree's itertext(): all character data under the element,
// including inside nested inline markup, in document order. innerxml
// gives the raw bytes between the <l> tags; re-decoding that fragment and
// keeping only its CharData tokens reproduces itertext() without needing
// encoding/xml's struct decoding to model mixed content directly.
//
// It also recovers the split an injected <caesura/> element records: the
// text up to that element is before, the text after it is after, mirroring
// how Annotate spliced the element in. hasCaesura is false for a line that
// was never annotated, or whose best scansion had no caesura.
func recoverLine(n node) (text, before, after string, hasCaesura bool) {
	var b strings.Builder
	dec := xml.NewDecoder(strings.NewReader(string(n.Content)))
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			if t.Name.Local == "caesura" && !hasCaesura {
				hasCaesura = true
				before = b.String()
			}
		}
	}
	text = b.String()
	if hasCaesura {
		after = text[len(before):]
	}
	return text, before, after, hasCaesura
}

// recoverResults rebuilds the scansion set Annotate wrote into the line's
// real attribute: one hexascan.Result per " OR "-separated alternative, each
// carrying the same caesura split (Annotate only ever splices one
// <caesura/>, taken from its first, lowest-cost match). A line with no real
// attribute was never annotated and gets no Results.
func recoverResults(n node, text, before, after string, hasCaesura bool) []hexascan.Result {
	real, ok := n.attr("real")
	if !ok || real == "" {
		return nil
	}
	parts := []string{text}
	if hasCaesura {
		parts = []string{before, after}
	}
	scansions := strings.Split(real, " OR ")
	results := make([]hexascan.Result, len(scansions))
	for i, s := range scansions {
		results[i] = hexascan.Result{Scansion: s, Parts: parts}
	}
	return results
}
