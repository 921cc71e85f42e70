package engine

import (
	"strconv"
	"strings"

	"github.com/fwojciec/mdarchive"
)

type paragraphRule struct{}

func (paragraphRule) Name() string { return "paragraph" }

func (paragraphRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindParagraph
}

func (paragraphRule) Render(content string, _ *mdarchive.Node) string {
	return "\n\n" + strings.TrimSpace(content) + "\n\n"
}

// delimiterRule wraps inline content in a symmetric delimiter. Surrounding
// whitespace is moved outside the delimiters, which CommonMark requires.
type delimiterRule struct {
	name  string
	kind  mdarchive.Kind
	delim string
}

func (r delimiterRule) Name() string { return r.name }

func (r delimiterRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == r.kind
}

func (r delimiterRule) Render(content string, _ *mdarchive.Node) string {
	core := strings.TrimSpace(content)
	if core == "" {
		return content
	}
	lead := content[:strings.Index(content, core)]
	trail := content[len(lead)+len(core):]
	return lead + r.delim + core + r.delim + trail
}

type anchorRule struct{}

func (anchorRule) Name() string { return "anchor" }

func (anchorRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindAnchor
}

func (anchorRule) Render(content string, n *mdarchive.Node) string {
	href := n.Attr("href")
	if href == "" {
		return content
	}
	text := strings.TrimSpace(content)
	if text == "" {
		text = href
	}
	return "[" + text + "](" + href + titlePart(n) + ")"
}

type imageRule struct{}

func (imageRule) Name() string { return "image" }

func (imageRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindImage
}

func (imageRule) Render(_ string, n *mdarchive.Node) string {
	src := n.Attr("src")
	if src == "" {
		return ""
	}
	return "![" + n.Attr("alt") + "](" + src + titlePart(n) + ")"
}

func titlePart(n *mdarchive.Node) string {
	title := n.Attr("title")
	if title == "" {
		return ""
	}
	return ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}

type codeRule struct{}

func (codeRule) Name() string { return "code" }

func (codeRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindCode
}

// Render uses the raw text content; the escaped child content is not valid
// inside a code span.
func (codeRule) Render(_ string, n *mdarchive.Node) string {
	text := n.TextContent()
	if text == "" {
		return ""
	}
	fence := strings.Repeat("`", longestRun(text, '`')+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return fence + text + fence
}

type preformattedRule struct{}

func (preformattedRule) Name() string { return "preformatted" }

func (preformattedRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindPreformatted
}

func (preformattedRule) Render(_ string, n *mdarchive.Node) string {
	code := strings.TrimRight(n.TextContent(), "\n")
	fenceLen := 3
	if run := longestRun(code, '`'); run >= fenceLen {
		fenceLen = run + 1
	}
	fence := strings.Repeat("`", fenceLen)
	return "\n\n" + fence + language(n) + "\n" + code + "\n" + fence + "\n\n"
}

// language reads a language hint from the class of the pre element or of
// its first code child.
func language(pre *mdarchive.Node) string {
	candidates := []*mdarchive.Node{pre}
	for _, c := range pre.Children {
		if c.Kind() == mdarchive.KindCode {
			candidates = append(candidates, c)
			break
		}
	}
	for _, n := range candidates {
		for _, class := range strings.Fields(n.Attr("class")) {
			for _, prefix := range []string{"language-", "lang-"} {
				if lang, ok := strings.CutPrefix(class, prefix); ok && lang != "" {
					return lang
				}
			}
		}
	}
	return ""
}

func longestRun(s string, r byte) int {
	longest, current := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == r {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	return longest
}

type lineBreakRule struct{}

func (lineBreakRule) Name() string { return "line-break" }

func (lineBreakRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindLineBreak
}

func (lineBreakRule) Render(string, *mdarchive.Node) string {
	return "  \n"
}

type thematicBreakRule struct{}

func (thematicBreakRule) Name() string { return "thematic-break" }

func (thematicBreakRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindThematicBreak
}

func (thematicBreakRule) Render(string, *mdarchive.Node) string {
	return "\n\n---\n\n"
}

type listRule struct{}

func (listRule) Name() string { return "list" }

func (listRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindList
}

func (listRule) Render(content string, _ *mdarchive.Node) string {
	return "\n\n" + strings.Trim(content, "\n") + "\n\n"
}

type listItemRule struct{}

func (listItemRule) Name() string { return "list-item" }

func (listItemRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindListItem
}

// Render prefixes the item with a bullet, or with its number inside an
// ordered list, and indents continuation lines under the marker.
func (listItemRule) Render(content string, n *mdarchive.Node) string {
	marker := "- "
	if parent := n.Parent(); parent != nil && parent.Tag == "ol" {
		start, err := strconv.Atoi(parent.Attr("start"))
		if err != nil {
			start = 1
		}
		index := 0
		for _, sibling := range parent.Children {
			if sibling == n {
				break
			}
			if sibling.Kind() == mdarchive.KindListItem {
				index++
			}
		}
		marker = strconv.Itoa(start+index) + ". "
	}

	indent := strings.Repeat(" ", len(marker))
	lines := strings.Split(strings.TrimSpace(content), "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}
	return marker + strings.Join(lines, "\n") + "\n"
}

type blockquoteRule struct{}

func (blockquoteRule) Name() string { return "blockquote" }

func (blockquoteRule) Match(n *mdarchive.Node) bool {
	return n.Kind() == mdarchive.KindBlockquote
}

func (blockquoteRule) Render(content string, _ *mdarchive.Node) string {
	lines := strings.Split(strings.Trim(content, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return "\n\n" + strings.Join(lines, "\n") + "\n\n"
}
