package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// When no element carries the details heading, the structural pass finds
// zero blocks and the text fallback takes over. The heading here lives in
// bare text nodes under body, so no single element owns it as a container.
func TestParseFallbackSplitsOnHeadingText(t *testing.T) {
	page := `<html><body>
Problem Statement Details
<p>Problem Statement ID</p><p>25101</p>
<p>Problem Statement Title</p><p>Recovered via fallback</p>
<p>Software SIH25101 5 Smart Automation</p>
Problem Statement Details
<p>Problem Statement ID</p><p>25102</p>
<p>Problem Statement Title</p><p>Second recovered record</p>
</body></html>`

	records, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "25101", records[0].ID)
	assert.Equal(t, "Recovered via fallback", records[0].Title)
	assert.Equal(t, "SIH25101", records[0].PSCode)
	assert.Equal(t, "Smart Automation", records[0].ListTheme)

	assert.Equal(t, "25102", records[1].ID)
}

// Label text without any heading at all still recovers a record: the
// fallback treats the whole page as one candidate block.
func TestParseFallbackLabelsOnly(t *testing.T) {
	page := `<html><body>
<p>Problem Statement ID</p><p>25201</p>
<p>Problem Statement Title</p><p>Headingless page</p>
<p>Category</p><p>Software</p>
</body></html>`

	records, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "25201", records[0].ID)
	assert.Equal(t, "Headingless page", records[0].Title)
	assert.Equal(t, "Software", records[0].Category)
}

// The fallback is all-or-nothing: a page where the structural pass succeeds
// must never run through the text splitter as well, or records would double.
func TestPrimaryAndFallbackNeverBothRun(t *testing.T) {
	page := `<html><body>
		<div><h6>Problem Statement Details</h6>
			<p>Problem Statement ID</p><p>25301</p>
			<p>Problem Statement Title</p><p>Structural only</p>
		</div>
	</body></html>`

	records, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func mustDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestFindBlocksCountsHeadingsOnce(t *testing.T) {
	doc := mustDoc(t, `<html><body><div id="outer">
		<div><h6>Problem Statement Details</h6><p>Problem Statement ID</p><p>A1</p></div>
		<div><h6>Problem Statement Details</h6><p>Problem Statement ID</p><p>A2</p></div>
	</div></body></html>`)

	blocks := findBlocks(doc)
	require.Len(t, blocks, 2, "the wrapper holding both headings is not a block")
}

func TestBlockTextFlattensAndTrims(t *testing.T) {
	doc := mustDoc(t, `<html><body><div id="b">
		<h6>  Problem   Statement Details </h6>
		<table><tr><td>Problem Statement ID</td><td> 25001 </td></tr></table>
		<script>ignored()</script>
	</div></body></html>`)

	text := blockText(doc.Find("#b"))
	lines := strings.Split(text, "\n")
	assert.Equal(t, "Problem Statement Details", lines[0])
	assert.Contains(t, lines, "25001")
	assert.NotContains(t, text, "ignored")
}
