package engine

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mdarchive"
)

// genericRule governs every node no other rule claims. Containers pass
// their children's content through unchanged; leaves emit their text,
// whitespace-collapsed and escaped.
type genericRule struct{}

func (genericRule) Name() string { return "generic" }

func (genericRule) Match(*mdarchive.Node) bool { return true }

func (genericRule) Render(content string, n *mdarchive.Node) string {
	if len(n.Children) > 0 {
		return content
	}
	return Escape(collapseSpace(n.TextContent()))
}

var spaceRun = regexp.MustCompile(`[ \t\r\n\f]+`)

func collapseSpace(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
)

var lineStartEscapes = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`^(#{1,6}) `), `\$1 `},
	{regexp.MustCompile(`^>`), `\>`},
	{regexp.MustCompile(`^([-+]) `), `\$1 `},
	{regexp.MustCompile(`^(=+)`), `\$1`},
	{regexp.MustCompile(`^(\d+)\. `), `$1\. `},
}

// Escape backslash-escapes Markdown syntax characters in plain text so that
// they render literally.
func Escape(s string) string {
	s = inlineEscaper.Replace(s)
	for _, e := range lineStartEscapes {
		s = e.re.ReplaceAllString(s, e.repl)
	}
	return s
}
