// Package goldmark inspects produced Markdown with the goldmark parser.
package goldmark

import (
	"strings"

	"github.com/fwojciec/mdarchive"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Inspector implements mdarchive.Inspector at compile time.
var _ mdarchive.Inspector = (*Inspector)(nil)

// Inspector parses Markdown (with GFM tables) and reports its structure.
type Inspector struct {
	md goldmark.Markdown
}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Inspect walks the Markdown AST and counts headings, links, images, code
// blocks, tables and lists. Nested lists are counted individually.
func (i *Inspector) Inspect(markdown string) (*mdarchive.Structure, error) {
	src := []byte(markdown)
	doc := i.md.Parser().Parse(text.NewReader(src))

	s := &mdarchive.Structure{}
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s.Headings = append(s.Headings, mdarchive.Heading{
				Level: node.Level,
				Text:  strings.TrimSpace(string(node.Text(src))),
			})
		case *ast.Link, *ast.AutoLink:
			s.Links++
		case *ast.Image:
			s.Images++
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			s.CodeBlocks++
		case *extast.Table:
			s.Tables++
			return ast.WalkSkipChildren, nil
		case *ast.List:
			s.Lists++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, mdarchive.Errorf(mdarchive.EINTERNAL, "failed to inspect markdown: %v", err)
	}
	return s, nil
}
