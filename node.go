package mdarchive

import (
	"strings"
)

// NodeType distinguishes element nodes from text leaves.
type NodeType uint8

// NodeType constants.
const (
	ElementNode NodeType = iota
	TextNode
)

// Kind identifies what a node represents for conversion purposes.
// It is derived from the tag name and, for math expressions, from the
// presence of a formula attribute.
type Kind uint8

// Kind constants.
const (
	KindContainer Kind = iota
	KindText
	KindHeading
	KindParagraph
	KindTable
	KindTableRow
	KindHeaderCell
	KindDataCell
	KindAnchor
	KindImage
	KindStrong
	KindEmphasis
	KindCode
	KindPreformatted
	KindLineBreak
	KindThematicBreak
	KindList
	KindListItem
	KindBlockquote
	KindMath
)

var kindNames = [...]string{
	KindContainer:     "container",
	KindText:          "text",
	KindHeading:       "heading",
	KindParagraph:     "paragraph",
	KindTable:         "table",
	KindTableRow:      "table-row",
	KindHeaderCell:    "header-cell",
	KindDataCell:      "data-cell",
	KindAnchor:        "anchor",
	KindImage:         "image",
	KindStrong:        "strong",
	KindEmphasis:      "emphasis",
	KindCode:          "code",
	KindPreformatted:  "preformatted",
	KindLineBreak:     "line-break",
	KindThematicBreak: "thematic-break",
	KindList:          "list",
	KindListItem:      "list-item",
	KindBlockquote:    "blockquote",
	KindMath:          "math",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MathAttr is the attribute carrying a raw LaTeX formula.
const MathAttr = "data-tex"

var tagKinds = map[string]Kind{
	"h1":         KindHeading,
	"h2":         KindHeading,
	"h3":         KindHeading,
	"h4":         KindHeading,
	"h5":         KindHeading,
	"h6":         KindHeading,
	"p":          KindParagraph,
	"table":      KindTable,
	"tr":         KindTableRow,
	"th":         KindHeaderCell,
	"td":         KindDataCell,
	"a":          KindAnchor,
	"img":        KindImage,
	"strong":     KindStrong,
	"b":          KindStrong,
	"em":         KindEmphasis,
	"i":          KindEmphasis,
	"code":       KindCode,
	"pre":        KindPreformatted,
	"br":         KindLineBreak,
	"hr":         KindThematicBreak,
	"ul":         KindList,
	"ol":         KindList,
	"li":         KindListItem,
	"blockquote": KindBlockquote,
}

// blockContainers are container tags whose output is separated from its
// siblings by a blank line.
var blockContainers = map[string]bool{
	"address": true, "article": true, "aside": true, "body": true,
	"details": true, "dialog": true, "dd": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "header": true, "html": true, "main": true,
	"nav": true, "section": true, "summary": true,
}

// Node is one element or text run of an HTML-like document.
//
// Text nodes carry their payload in Data and have no children. Element
// nodes carry Tag, Attrs and Children. Children must be attached through
// NewElement or AppendChild so that Parent stays consistent.
type Node struct {
	Type     NodeType
	Tag      string
	Attrs    map[string]string
	Data     string
	Children []*Node

	parent *Node
}

// NewText returns a text leaf.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// NewElement returns an element node with the given children attached.
// The tag name is lower-cased.
func NewElement(tag string, attrs map[string]string, children ...*Node) *Node {
	n := &Node{Type: ElementNode, Tag: strings.ToLower(tag), Attrs: attrs}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// AppendChild attaches c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attrs[name]
	return ok
}

// HasClass reports whether the class attribute contains the given token.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Kind derives the node's kind. Any element carrying a formula attribute is
// a math expression regardless of its tag.
func (n *Node) Kind() Kind {
	if n.Type == TextNode {
		return KindText
	}
	if n.HasAttr(MathAttr) {
		return KindMath
	}
	if k, ok := tagKinds[n.Tag]; ok {
		return k
	}
	return KindContainer
}

// Level returns the heading level (1-6) for heading nodes and 0 otherwise.
func (n *Node) Level() int {
	if n.Kind() != KindHeading {
		return 0
	}
	return int(n.Tag[1] - '0')
}

// IsBlock reports whether the node's output is a block-level fragment.
func (n *Node) IsBlock() bool {
	switch n.Kind() {
	case KindHeading, KindParagraph, KindTable, KindPreformatted,
		KindThematicBreak, KindList, KindBlockquote:
		return true
	case KindContainer:
		return n.Type == ElementNode && blockContainers[n.Tag]
	}
	return false
}

// TextContent returns the concatenation of all descendant text.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Type == TextNode {
		b.WriteString(n.Data)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// IsEmpty reports whether the node carries nothing to convert: a nil node,
// an empty text run, or an element without children or attributes.
func (n *Node) IsEmpty() bool {
	if n == nil {
		return true
	}
	if n.Type == TextNode {
		return n.Data == ""
	}
	return len(n.Children) == 0 && len(n.Attrs) == 0
}

// Find returns all descendants of n (excluding n) matching pred, in
// document order.
func (n *Node) Find(pred func(*Node) bool) []*Node {
	var found []*Node
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.Children {
			if pred(c) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

// Clone returns a deep copy of n detached from any parent.
func (n *Node) Clone() *Node {
	c := &Node{Type: n.Type, Tag: n.Tag, Data: n.Data}
	if n.Attrs != nil {
		c.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			c.Attrs[k] = v
		}
	}
	for _, child := range n.Children {
		c.AppendChild(child.Clone())
	}
	return c
}

// ReplaceWith substitutes r for n in n's parent. It is a no-op for roots.
func (n *Node) ReplaceWith(r *Node) {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			r.parent = p
			p.Children[i] = r
			n.parent = nil
			return
		}
	}
}
