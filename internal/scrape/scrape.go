package scrape

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sih-tools/psgrab/internal/ps"
)

// ErrNoRecords is returned when neither the structural pass nor the regex
// fallback recovers a single record. Empty output is never written silently.
var ErrNoRecords = errors.New("no problem statements found in page")

// detailLabels are the field headings inside each detail block, in the order
// the site renders them.
var detailLabels = []string{
	"Problem Statement ID",
	"Problem Statement Title",
	"Description",
	"Background",
	"Expected Solution",
	"Organization",
	"Department",
	"Category",
	"Theme",
	"Youtube Link",
	"Dataset Link",
	"Contact info",
}

var (
	headingRe = regexp.MustCompile(`(?i)\bProblem Statement Details\b`)

	// Listing footer line, e.g. "Software SIH25001 12 MedTech / BioTech / HealthTech".
	// The ideas counter is sometimes absent.
	footerRe = regexp.MustCompile(`(?i)^(Software|Hardware)\s+(SIH\d{5})\s+(\d+)?\s*(.*)$`)

	spaceRe  = regexp.MustCompile(`[ \t]+`)
	bulletRe = regexp.MustCompile(`\n•\s*`)

	// One pattern per label, matching the label as a whole line.
	labelRes = func() map[string]*regexp.Regexp {
		m := make(map[string]*regexp.Regexp, len(detailLabels))
		for _, label := range detailLabels {
			m[label] = regexp.MustCompile(`(?mi)^` + regexp.QuoteMeta(label) + `\s*$`)
		}
		return m
	}()
)

// Parse extracts problem statement records from listing markup.
// The regex fallback runs only when the structural pass finds zero detail
// blocks, never per field.
func Parse(r io.Reader) ([]*ps.ProblemStatement, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var records []*ps.ProblemStatement

	blocks := findBlocks(doc)
	if len(blocks) > 0 {
		for _, block := range blocks {
			if rec := recordFromText(blockText(block)); rec != nil {
				records = append(records, rec)
			}
		}
	} else {
		records = parseFallback(doc)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// findBlocks locates one container per detail block. Seeds are elements whose
// own text carries the heading; each seed climbs to the widest ancestor still
// holding exactly one heading, and containers are deduplicated by node.
func findBlocks(doc *goquery.Document) []*goquery.Selection {
	var blocks []*goquery.Selection
	seen := make(map[*html.Node]bool)

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		// Containers live below body; heading text loose under body or
		// html is the fallback's job.
		if d := sel.Get(0).Data; d == "body" || d == "html" {
			return
		}
		if !headingRe.MatchString(ownText(sel)) {
			return
		}

		block := sel
		for {
			parent := block.Parent()
			if parent.Length() == 0 {
				break
			}
			if n := parent.Get(0); n.Type == html.ElementNode && (n.Data == "body" || n.Data == "html") {
				break
			}
			if len(headingRe.FindAllStringIndex(parent.Text(), -1)) != 1 {
				break
			}
			block = parent
		}

		node := block.Get(0)
		if seen[node] {
			return
		}
		seen[node] = true
		blocks = append(blocks, block)
	})

	return blocks
}

// parseFallback recovers records from the flattened page text when the
// expected containers are gone: split on the heading if it survives as text,
// otherwise treat the whole page as one candidate keyed on label lines.
func parseFallback(doc *goquery.Document) []*ps.ProblemStatement {
	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	text := blockText(sel)

	parts := headingRe.Split(text, -1)
	if len(parts) < 2 {
		parts = []string{"", text}
	}

	var records []*ps.ProblemStatement
	for _, part := range parts[1:] {
		if rec := recordFromText(part); rec != nil {
			records = append(records, rec)
		}
	}

	return records
}

// recordFromText maps one block's line-structured text to a record.
// Returns nil when the block yields no fields at all, so malformed
// containers are skipped rather than emitted empty.
func recordFromText(text string) *ps.ProblemStatement {
	labeled := splitLabeled(text)
	listCategory, code, ideas, listTheme := parseFooterLine(text)

	rec := &ps.ProblemStatement{
		ID:               labeled["Problem Statement ID"],
		Title:            labeled["Problem Statement Title"],
		Description:      labeled["Description"],
		Background:       labeled["Background"],
		ExpectedSolution: labeled["Expected Solution"],
		Organization:     labeled["Organization"],
		Department:       labeled["Department"],
		Category:         labeled["Category"],
		Theme:            labeled["Theme"],
		YoutubeLink:      labeled["Youtube Link"],
		DatasetLink:      labeled["Dataset Link"],
		ContactInfo:      labeled["Contact info"],
		PSCode:           code,
		IdeasCount:       ideas,
		ListCategory:     listCategory,
		ListTheme:        listTheme,
	}

	// The footer line repeats category/theme; use it when the labeled
	// fields are missing.
	if rec.Category == "" {
		rec.Category = rec.ListCategory
	}
	if rec.Theme == "" {
		rec.Theme = rec.ListTheme
	}

	if rec.IsEmpty() {
		return nil
	}
	return rec
}

// splitLabeled slices the block text into label-keyed chunks: each known
// label matched as a whole line, value running until the next label line.
func splitLabeled(text string) map[string]string {
	type labelPos struct {
		label string
		start int
	}

	var positions []labelPos
	for _, label := range detailLabels {
		if loc := labelRes[label].FindStringIndex(text); loc != nil {
			positions = append(positions, labelPos{label: label, start: loc[0]})
		}
	}

	fields := make(map[string]string, len(positions))
	if len(positions) == 0 {
		return fields
	}

	// Labels appear in document order but sort to be safe.
	for i := 1; i < len(positions); i++ {
		for j := i; j > 0 && positions[j].start < positions[j-1].start; j-- {
			positions[j], positions[j-1] = positions[j-1], positions[j]
		}
	}
	positions = append(positions, labelPos{start: len(text)})

	for i := 0; i < len(positions)-1; i++ {
		start := positions[i].start
		end := positions[i+1].start

		// Value starts after the label's own line.
		valueStart := strings.IndexByte(text[start:end], '\n')
		if valueStart == -1 {
			fields[positions[i].label] = ""
			continue
		}

		value := strings.TrimSpace(text[start+valueStart : end])
		value = bulletRe.ReplaceAllString(value, "\n• ")
		fields[positions[i].label] = value
	}

	return fields
}

// parseFooterLine scans for the listing footer line and returns its parts.
func parseFooterLine(text string) (category, code, ideas, theme string) {
	for _, line := range strings.Split(text, "\n") {
		if m := footerRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return m[1], m[2], m[3], strings.TrimSpace(m[4])
		}
	}
	return "", "", "", ""
}

// ownText concatenates the direct child text nodes of each element in sel,
// excluding descendant elements.
func ownText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}

// blockText flattens an element subtree to newline-separated trimmed lines,
// the shape splitLabeled expects: labels and values on their own lines.
func blockText(sel *goquery.Selection) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			for _, line := range strings.Split(n.Data, "\n") {
				line = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
				if line != "" {
					b.WriteString(line)
					b.WriteByte('\n')
				}
			}
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, node := range sel.Nodes {
		walk(node)
	}

	return strings.TrimSpace(b.String())
}
