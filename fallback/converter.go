// Package fallback implements a pass-based HTML to Markdown converter that
// does not depend on the rule engine. It is used when the primary converter
// is unavailable.
//
// The converter runs a fixed sequence of whole-tree passes over a private
// copy of the input. Each pass finds every remaining element of one kind and
// replaces it with a literal text node. Because earlier passes flatten their
// elements to text, a kind handled later that is nested inside a kind
// handled earlier is never seen: a link inside a heading loses its URL, and
// bold text inside a link keeps its literal ** markers inside the link text.
// Callers rely on this output; keep the passes in their current order.
package fallback

import (
	"strconv"
	"strings"

	"github.com/fwojciec/mdarchive"
)

// Ensure Converter implements mdarchive.Converter at compile time.
var _ mdarchive.Converter = (*Converter)(nil)

// Converter is the pass-based fallback converter.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert runs the passes over a copy of root's descendants and returns the
// text content of the result. The input tree is never modified.
func (c *Converter) Convert(root *mdarchive.Node) (string, error) {
	if root.IsEmpty() {
		return "", mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found")
	}

	doc := root.Clone()

	for level := 1; level <= 6; level++ {
		hashes := strings.Repeat("#", level)
		replaceAll(doc, tagIs("h"+strconv.Itoa(level)), func(n *mdarchive.Node) string {
			return "\n" + hashes + " " + strings.TrimSpace(n.TextContent()) + "\n\n"
		})
	}

	replaceAll(doc, tagIs("strong", "b"), func(n *mdarchive.Node) string {
		return "**" + n.TextContent() + "**"
	})

	replaceAll(doc, tagIs("em", "i"), func(n *mdarchive.Node) string {
		return "*" + n.TextContent() + "*"
	})

	replaceAll(doc, tagIs("a"), func(n *mdarchive.Node) string {
		href := n.Attr("href")
		if href == "" {
			return skip
		}
		text := n.TextContent()
		if text == "" {
			text = href
		}
		return "[" + text + "](" + href + ")"
	})

	replaceAll(doc, tagIs("img"), func(n *mdarchive.Node) string {
		src := n.Attr("src")
		if src == "" {
			return skip
		}
		alt := n.Attr("alt")
		if alt == "" {
			alt = "image"
		}
		return "\n![" + alt + "](" + src + ")\n"
	})

	for _, p := range doc.Find(tagIs("p")) {
		terminateParagraph(p)
	}

	replaceAll(doc, tagIs("pre"), func(n *mdarchive.Node) string {
		return "\n```\n" + strings.TrimSpace(n.TextContent()) + "\n```\n\n"
	})

	replaceAll(doc, tagIs("code"), func(n *mdarchive.Node) string {
		if parent := n.Parent(); parent != nil && parent.Tag == "pre" {
			return skip
		}
		return "`" + n.TextContent() + "`"
	})

	return doc.TextContent(), nil
}

// skip tells replaceAll to leave a node in place. Real replacements are
// never empty.
const skip = ""

// replaceAll collects every descendant matching pred before replacing any
// of them, then substitutes each with a text node holding its Markdown.
// Nodes already detached by an earlier replacement are replaced within
// their detached subtree, which has no effect on the result.
func replaceAll(root *mdarchive.Node, pred func(*mdarchive.Node) bool, markdown func(*mdarchive.Node) string) {
	for _, n := range root.Find(pred) {
		if md := markdown(n); md != skip {
			n.ReplaceWith(mdarchive.NewText(md))
		}
	}
}

// htmlSpace is the whitespace trimmed from serialized inner markup.
// Non-breaking spaces serialize as entities and survive trimming.
const htmlSpace = " \t\n\r\f"

// terminateParagraph trims the paragraph's leading and trailing whitespace
// and appends a blank line. Paragraphs with only whitespace are left alone.
func terminateParagraph(p *mdarchive.Node) {
	start, end := 0, len(p.Children)
	for start < end && isBlankText(p.Children[start]) {
		start++
	}
	for end > start && isBlankText(p.Children[end-1]) {
		end--
	}
	if start == end {
		return
	}

	kept := append([]*mdarchive.Node(nil), p.Children[start:end]...)
	if first := kept[0]; first.Type == mdarchive.TextNode {
		first.Data = strings.TrimLeft(first.Data, htmlSpace)
	}
	if last := kept[len(kept)-1]; last.Type == mdarchive.TextNode {
		last.Data = strings.TrimRight(last.Data, htmlSpace)
	}
	p.Children = kept
	p.AppendChild(mdarchive.NewText("\n\n"))
}

func isBlankText(n *mdarchive.Node) bool {
	return n.Type == mdarchive.TextNode && strings.Trim(n.Data, htmlSpace) == ""
}

func tagIs(tags ...string) func(*mdarchive.Node) bool {
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
