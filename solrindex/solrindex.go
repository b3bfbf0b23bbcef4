// Package solrindex pushes annotated hexameter lines to a Solr core and
// queries them back, porting original_source/index_tei.py and
// original_source/find_words.py. The originals use the sunburnt Solr ORM;
// no Solr client exists anywhere in the retrieved pack, so this talks to
// Solr's update/select handlers directly over net/http + encoding/json
// (documented in DESIGN.md).
package solrindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// LineDoc is one Solr document, matching index_tei.py's line_data dict
// field for field.
type LineDoc struct {
	LineID        string   `json:"lineid"`
	WorkName      string   `json:"work_name"`
	BookNum       string   `json:"book_num"`
	LineNum       int      `json:"line_num"`
	LineText      string   `json:"line_text"`
	Scansion      []string `json:"scansion"`
	BeforeCaesura string   `json:"before_caesura,omitempty"`
	AfterCaesura  string   `json:"after_caesura,omitempty"`
}

// NewLineID mirrors index_tei.py's "%s.%s.%d" id scheme, falling back to a
// random uuid when the work abbreviation or the book is empty (e.g. an
// unrecognized work title, or a line outside of any book structure).
func NewLineID(workAbbrev, book string, line int) string {
	if workAbbrev == "" || book == "" {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s.%s.%d", workAbbrev, book, line)
}

// Client is a minimal Solr HTTP client bound to one core's base URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client using http.DefaultClient.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

// Add posts documents to Solr's /update handler and commits them, the
// Go equivalent of sunburnt's solr.add(...)/solr.commit().
func (c *Client) Add(ctx context.Context, docs []LineDoc) error {
	if len(docs) == 0 {
		return nil
	}
	body, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("solrindex: marshal docs: %w", err)
	}
	if err := c.post(ctx, "/update", body); err != nil {
		return fmt.Errorf("solrindex: add: %w", err)
	}
	return c.post(ctx, "/update?commit=true", nil)
}

func (c *Client) post(ctx context.Context, path string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("solr returned status %d", resp.StatusCode)
	}
	return nil
}

// SearchResponse is the slice of a Solr /select response this client
// actually uses: the total hit count and the matched documents, sorted
// server-side by work_name, book_num, line_num (find_words.py's
// sort_by chain).
type SearchResponse struct {
	NumFound int
	Docs     []LineDoc
}

type solrSelectResponse struct {
	ResponseHeader struct {
		Status int `json:"status"`
	} `json:"responseHeader"`
	Response struct {
		NumFound int       `json:"numFound"`
		Start    int       `json:"start"`
		Docs     []LineDoc `json:"docs"`
	} `json:"response"`
}

// Search queries Solr for documents containing every word in words,
// paginated the way find_words.py's report_results loop pages through
// results 10 rows at a time.
func (c *Client) Search(ctx context.Context, words []string, start, rows int) (*SearchResponse, error) {
	q := strings.Join(words, " ")
	values := url.Values{}
	values.Set("q", q)
	values.Set("q.op", "AND")
	values.Set("sort", "work_name asc, book_num asc, line_num asc")
	values.Set("start", strconv.Itoa(start))
	values.Set("rows", strconv.Itoa(rows))
	values.Set("wt", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/select?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solrindex: search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("solrindex: search: solr returned status %d", resp.StatusCode)
	}

	var parsed solrSelectResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("solrindex: decode response: %w", err)
	}
	return &SearchResponse{NumFound: parsed.Response.NumFound, Docs: parsed.Response.Docs}, nil
}

// FormatHit renders one matched line the way find_words.py's
// report_results prints it: lineid, first scansion, and either the
// caesura-split text or the plain line text, with any additional
// scansions on their own "alternate scansion" rows.
func FormatHit(doc LineDoc) []string {
	scans := doc.Scansion
	if len(scans) == 0 {
		scans = []string{""}
	}

	line := doc.LineText
	if doc.BeforeCaesura != "" || doc.AfterCaesura != "" {
		line = fmt.Sprintf("%s // %s", strings.TrimSpace(doc.BeforeCaesura), strings.TrimSpace(doc.AfterCaesura))
	}

	rows := make([]string, 0, len(scans))
	rows = append(rows, fmt.Sprintf("%-9s %-22s %s", doc.LineID, scans[0], line))
	for _, s := range scans[1:] {
		rows = append(rows, fmt.Sprintf("%-9s %-22s %s", "", s, "  alternate scansion"))
	}
	return rows
}
