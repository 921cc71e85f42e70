package engine

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mdarchive"
)

// Ensure Converter implements mdarchive.Converter at compile time.
var _ mdarchive.Converter = (*Converter)(nil)

// Ensure Converter implements mdarchive.Prober at compile time.
var _ mdarchive.Prober = (*Converter)(nil)

// Converter converts trees with the built-in rules plus any registered
// custom rules. A fresh RuleSet is built for every conversion.
type Converter struct {
	rules []mdarchive.Rule
}

// Option configures a Converter.
type Option func(*Converter)

// WithRules registers custom rules. Rules registered later take precedence.
func WithRules(rules ...mdarchive.Rule) Option {
	return func(c *Converter) {
		c.rules = append(c.rules, rules...)
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddRule registers a custom rule that takes precedence over every rule
// registered before it. It must not be called concurrently with Convert.
func (c *Converter) AddRule(r mdarchive.Rule) {
	c.rules = append(c.rules, r)
}

// Convert transforms the tree rooted at root into Markdown.
func (c *Converter) Convert(root *mdarchive.Node) (string, error) {
	return Convert(root, NewRuleSet(c.rules...))
}

// Probe reports whether the converter, including its custom rules, can
// convert a trivial document. A panicking rule makes the probe fail.
func (c *Converter) Probe() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	probe := mdarchive.NewElement("div", nil,
		mdarchive.NewElement("p", nil, mdarchive.NewText("test")),
	)
	_, err := c.Convert(probe)
	return err == nil
}

// blankLines matches two or more consecutive blank lines, including lines
// holding only spaces or tabs.
var blankLines = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

// Convert folds the tree rooted at root into Markdown using rules. Children
// are converted before their parent's rule runs. The result has no leading
// or trailing blank lines and never more than one consecutive blank line.
//
// Returns ENOTFOUND if root is nil or empty. Unknown node kinds never fail;
// they pass their content through.
func Convert(root *mdarchive.Node, rules *RuleSet) (string, error) {
	if root.IsEmpty() {
		return "", mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found")
	}
	if rules == nil {
		rules = NewRuleSet()
	}

	f := rules.convert(root)
	out := blankLines.ReplaceAllString(f.text, "\n\n")
	return strings.TrimSpace(out), nil
}

// fragment is the Markdown produced for one node.
type fragment struct {
	text  string
	block bool
}

func (s *RuleSet) convert(n *mdarchive.Node) fragment {
	ctx := &conversionContext{}
	for _, c := range n.Children {
		ctx.write(s.convert(c))
	}

	rule := s.Resolve(n)
	block := n.IsBlock()
	// A pass-through wrapper is transparent: it is a block when its
	// content contains one.
	if rule == s.generic && ctx.sawBlock {
		block = true
	}
	return fragment{text: rule.Render(ctx.String(), n), block: block}
}

// conversionContext accumulates the content of one node's children.
type conversionContext struct {
	buf       strings.Builder
	lastBlock bool
	sawBlock  bool
}

func (c *conversionContext) String() string {
	return c.buf.String()
}

// write appends f. Block fragments are separated from their neighbours by
// exactly one blank line; inline fragments are concatenated directly.
// Whitespace-only inline fragments are dropped where they would only pad a
// line boundary.
func (c *conversionContext) write(f fragment) {
	if f.block {
		text := strings.Trim(f.text, "\n")
		if strings.TrimSpace(text) == "" {
			return
		}
		c.separate()
		c.buf.WriteString(text)
		c.lastBlock = true
		c.sawBlock = true
		return
	}

	if strings.TrimSpace(f.text) == "" && !strings.Contains(f.text, "\n") {
		cur := c.buf.String()
		if cur == "" || c.lastBlock || strings.HasSuffix(cur, "\n") {
			return
		}
	}

	text := f.text
	if endsInSpace(c.buf.String()) {
		switch {
		case strings.TrimSpace(text) != "":
			text = strings.TrimLeft(text, " \t")
		case !strings.Contains(text, "\n"):
			return
		}
	}
	if c.lastBlock {
		text = strings.TrimLeft(text, " \t\n")
		if text == "" {
			return
		}
		c.separate()
	}
	c.buf.WriteString(text)
	c.lastBlock = false
}

// separate ends the current content with a blank line, unless empty.
func (c *conversionContext) separate() {
	cur := strings.TrimRight(c.buf.String(), " \t\n")
	c.buf.Reset()
	c.buf.WriteString(cur)
	if cur != "" {
		c.buf.WriteString("\n\n")
	}
}

func endsInSpace(s string) bool {
	return strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\t")
}
