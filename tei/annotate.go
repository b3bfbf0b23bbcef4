package tei

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/boxesandglue/hexascan"
)

// Annotate runs hexascan.Analyze over every <l> line in src and rewrites
// each one: a real="..." attribute holding the " OR "-joined scansion set,
// and an injected <caesura/> element splitting the line text at the split
// Analyze reports. Lines with no scannable text are left untouched and
// counted as failures in the returned Report.
//
// Full-fidelity structural rewriting (preserving whitespace, comments, and
// every other TEI feature byte-for-byte) would need a general XML pretty
// printer the pack doesn't supply; instead this walks raw <l>...</l> byte
// ranges located via encoding/xml's token offsets and splices the
// annotation directly into the source bytes, leaving everything else
// untouched.
func Annotate(src []byte, fallbackCost int) ([]byte, *Report, error) {
	if fallbackCost <= 0 {
		fallbackCost = hexascan.DefaultFallbackCost
	}

	dec := xml.NewDecoder(strings.NewReader(string(src)))
	report := &Report{}

	type patch struct {
		tagStart, tagEnd int64 // byte range of the opening <l ...> tag
		textEnd          int64 // byte offset just after the line's text, before </l>
		text             string
	}
	var patches []patch

	var depth int
	var cur *patch
	var textBuf strings.Builder
	for {
		start := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "l" {
				end := dec.InputOffset()
				cur = &patch{tagStart: start, tagEnd: end}
				textBuf.Reset()
				depth = 1
			} else if cur != nil {
				depth++
			}
		case xml.CharData:
			if cur != nil {
				textBuf.Write(t)
			}
		case xml.EndElement:
			if cur != nil {
				depth--
				if depth == 0 {
					cur.textEnd = start
					cur.text = textBuf.String()
					patches = append(patches, *cur)
					cur = nil
				}
			}
		}
	}

	out := make([]byte, 0, len(src))
	pos := int64(0)
	for _, p := range patches {
		out = append(out, src[pos:p.tagEnd]...)

		report.Total++
		results := hexascan.AnalyzeWithFallbackCost(p.text, fallbackCost)
		switch len(results) {
		case 0:
			report.NoMatch++
			out = append(out, src[p.tagEnd:p.textEnd]...)
			pos = p.textEnd
			continue
		case 1:
			report.Scanned++
		default:
			report.MultiMatch++
		}

		// Rewind the just-copied start tag (the last tagEnd-tagStart bytes
		// of out) to splice a real="..." attribute before its closing '>'.
		// Indexing by the original src offsets would drift once earlier
		// patches have inserted bytes, so this rewinds relative to out's
		// own length instead.
		tagLen := int(p.tagEnd - p.tagStart)
		tagBytes := append([]byte(nil), out[len(out)-tagLen:]...)
		out = out[:len(out)-tagLen]
		out = append(out, injectRealAttr(tagBytes, hexascan.Join(results))...)

		if len(results[0].Parts) == 2 {
			out = append(out, []byte(results[0].Parts[0])...)
			out = append(out, []byte(fmt.Sprintf("<caesura/>%s", results[0].Parts[1]))...)
		} else {
			out = append(out, src[p.tagEnd:p.textEnd]...)
		}
		pos = p.textEnd
	}
	out = append(out, src[pos:]...)

	return out, report, nil
}

// Report mirrors stats.Counters' shape for a single annotation pass; kept
// separate so tei doesn't need to import stats just for four integers.
type Report struct {
	Total      int
	Scanned    int
	NoMatch    int
	MultiMatch int
}

// injectRealAttr inserts real="scansion" just before the closing '>' of an
// opening tag, escaping the scansion text for use in an XML attribute.
func injectRealAttr(tag []byte, scansion string) []byte {
	s := string(tag)
	attr := fmt.Sprintf(` real="%s"`, escapeAttr(scansion))
	switch {
	case strings.HasSuffix(s, "/>"):
		return []byte(s[:len(s)-2] + attr + "/>")
	case strings.HasSuffix(s, ">"):
		return []byte(s[:len(s)-1] + attr + ">")
	default:
		return tag
	}
}

func escapeAttr(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
