// Package htmltomarkdown provides an mdarchive.Converter backed by the
// html-to-markdown library. It produces CommonMark output with GFM tables
// and keeps math expressions as LaTeX.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/goquery"
	"golang.org/x/net/html"
)

// Ensure Converter implements mdarchive.Converter at compile time.
var _ mdarchive.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert trees to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.Renderer(renderMath, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// Convert renders root back to HTML and converts it to Markdown.
func (c *Converter) Convert(root *mdarchive.Node) (string, error) {
	if root.IsEmpty() {
		return "", mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found")
	}

	rawHTML, err := goquery.Render(root)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(rawHTML)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// Probe reports whether the converter produces output for a trivial tree.
func (c *Converter) Probe() bool {
	md, err := c.Convert(mdarchive.NewElement("p", nil, mdarchive.NewText("test")))
	return err == nil && md == "test"
}

// renderMath writes elements carrying a formula attribute as LaTeX: inline
// as $f$, or as a $$f$$ block when the formula is tagged.
func renderMath(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	if n.Type != html.ElementNode {
		return converter.RenderTryNext
	}
	formula := dom.GetAttributeOr(n, mdarchive.MathAttr, "")
	if formula == "" {
		return converter.RenderTryNext
	}

	if strings.Contains(formula, `\tag`) {
		w.WriteString("\n\n$$" + formula + "$$\n\n")
	} else {
		w.WriteString("$" + formula + "$")
	}
	return converter.RenderSuccess
}
