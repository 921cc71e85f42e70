// Package goquery builds mdarchive trees from HTML using goquery and
// golang.org/x/net/html, and renders trees back to HTML.
package goquery

import (
	"bytes"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/mdarchive"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// noiseSelectors are removed before conversion: inline styles, and lazily
// loaded images whose src is only a placeholder.
var noiseSelectors = []string{"style", "img.lazy"}

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses an HTML page or fragment. Malformed markup is repaired
// the way browsers do; invalid UTF-8 sequences are dropped.
func NewDocument(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(strings.ToValidUTF8(rawHTML, "")))
	if err != nil {
		return nil, mdarchive.Errorf(mdarchive.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// HTML returns the current markup of the whole document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Strip removes style elements and lazily loaded images.
func (d *Document) Strip() {
	for _, sel := range noiseSelectors {
		d.doc.Find(sel).Remove()
	}
}

// Body returns the document body as a tree.
func (d *Document) Body() *mdarchive.Node {
	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		return FromNode(d.doc.Nodes[0])
	}
	return FromNode(body.Nodes[0])
}

// Select returns the first element matching selector as a tree.
// Returns ENOTFOUND if nothing matches and EINVALID for a bad selector.
func (d *Document) Select(selector string) (*mdarchive.Node, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, mdarchive.Errorf(mdarchive.EINVALID, "invalid selector %q: %v", selector, err)
	}
	sel := d.doc.FindMatcher(m).First()
	if sel.Length() == 0 {
		return nil, mdarchive.Errorf(mdarchive.ENOTFOUND, "no element matches %q", selector)
	}
	return FromNode(sel.Nodes[0]), nil
}

// Text returns the trimmed text of the first element matching selector, or
// "" when nothing matches.
func (d *Document) Text(selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(d.doc.Find(selector).First().Text())
}

// Parse parses an HTML fragment and returns its body as a tree.
func Parse(rawHTML string) (*mdarchive.Node, error) {
	d, err := NewDocument(rawHTML)
	if err != nil {
		return nil, err
	}
	return d.Body(), nil
}

// Locate parses a page, strips noise and returns the element matching
// selector, or the whole body when selector is empty.
func Locate(rawHTML, selector string) (*mdarchive.Node, error) {
	d, err := NewDocument(rawHTML)
	if err != nil {
		return nil, err
	}
	d.Strip()
	if selector == "" {
		return d.Body(), nil
	}
	return d.Select(selector)
}

// FromNode maps an x/net/html node to a tree. Elements become element nodes
// and text runs become text leaves; comments and doctypes are dropped. A
// document node becomes a div container.
func FromNode(n *html.Node) *mdarchive.Node {
	var out *mdarchive.Node
	switch n.Type {
	case html.TextNode:
		return mdarchive.NewText(n.Data)
	case html.ElementNode:
		var attrs map[string]string
		if len(n.Attr) > 0 {
			attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				if _, ok := attrs[a.Key]; !ok {
					attrs[a.Key] = a.Val
				}
			}
		}
		out = mdarchive.NewElement(n.Data, attrs)
	case html.DocumentNode:
		out = mdarchive.NewElement("div", nil)
	default:
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := FromNode(c); child != nil {
			out.AppendChild(child)
		}
	}
	return out
}

// ToNode maps a tree to an x/net/html node. Attributes are emitted in
// sorted order.
func ToNode(n *mdarchive.Node) *html.Node {
	if n.Type == mdarchive.TextNode {
		return &html.Node{Type: html.TextNode, Data: n.Data}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Attr = append(out.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	for _, c := range n.Children {
		out.AppendChild(ToNode(c))
	}
	return out
}

// Render serializes a tree to HTML.
func Render(n *mdarchive.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, ToNode(n)); err != nil {
		return "", mdarchive.Errorf(mdarchive.EINVALID, "failed to render HTML: %v", err)
	}
	return buf.String(), nil
}
