package engine

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mdarchive"
)

// displayMarker marks a formula that must render as a display block.
const displayMarker = `\tag`

type mathRule struct{}

func (mathRule) Name() string { return "math" }

func (mathRule) Match(n *mdarchive.Node) bool {
	return n.Type == mdarchive.ElementNode && n.HasAttr(mdarchive.MathAttr)
}

// Render ignores the rendered child content; the formula attribute is
// authoritative.
func (mathRule) Render(_ string, n *mdarchive.Node) string {
	formula := n.Attr(mdarchive.MathAttr)
	if strings.Contains(formula, displayMarker) {
		return "\n$$" + formula + "$$\n"
	}
	return "$" + formula + "$"
}

type headingRule struct{}

func (headingRule) Name() string { return "heading" }

func (headingRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindHeading
}

func (headingRule) Render(content string, n *mdarchive.Node) string {
	return "\n" + strings.Repeat("#", n.Level()) + " " + strings.TrimSpace(content) + "\n\n"
}

type tableRule struct{}

func (tableRule) Name() string { return "table" }

func (tableRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindTable
}

// Render builds a pipe table from the rows of n in document order. The
// separator row always follows the first row so the output stays a valid
// Markdown table even without header cells. A table without rows renders
// its child content unchanged.
func (tableRule) Render(content string, n *mdarchive.Node) string {
	rows := n.Find(hasTag("tr"))
	if len(rows) == 0 {
		return content
	}

	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		cells := row.Find(hasTag("th", "td"))
		texts := make([]string, len(cells))
		for i, cell := range cells {
			texts[i] = cellText(cell)
		}
		lines = append(lines, "| "+strings.Join(texts, " | ")+" |")
	}

	columns := len(rows[0].Find(hasTag("th")))
	if columns == 0 {
		columns = len(rows[0].Find(hasTag("td")))
	}
	dashes := make([]string, columns)
	for i := range dashes {
		dashes[i] = "---"
	}
	separator := "| " + strings.Join(dashes, " | ") + " |"

	lines = append(lines[:1], append([]string{separator}, lines[1:]...)...)
	return "\n\n" + strings.Join(lines, "\n") + "\n\n"
}

var cellNewlines = regexp.MustCompile(`\s*\n\s*`)

// cellText returns the trimmed single-line text of a cell. Empty cells
// become a single space so no column is dropped.
func cellText(cell *mdarchive.Node) string {
	text := strings.TrimSpace(cell.TextContent())
	text = cellNewlines.ReplaceAllString(text, " ")
	if text == "" {
		return " "
	}
	return text
}

func hasTag(tags ...string) func(*mdarchive.Node) bool {
	return func(n *mdarchive.Node) bool {
		if n.Type != mdarchive.ElementNode {
			return false
		}
		for _, t := range tags {
			if n.Tag == t {
				return true
			}
		}
		return false
	}
}
