package mdarchive

// Rule is one unit of conversion policy. Match decides whether the rule
// governs a node; Render turns the node's already-converted child content
// into the node's Markdown fragment. Rules must not mutate the tree.
type Rule interface {
	Name() string
	Match(n *Node) bool
	Render(content string, n *Node) string
}

// FuncRule adapts a pair of functions to the Rule interface.
type FuncRule struct {
	ID          string
	Filter      func(n *Node) bool
	Replacement func(content string, n *Node) string
}

// Ensure FuncRule implements Rule at compile time.
var _ Rule = (*FuncRule)(nil)

func (r *FuncRule) Name() string {
	return r.ID
}

func (r *FuncRule) Match(n *Node) bool {
	return r.Filter != nil && r.Filter(n)
}

func (r *FuncRule) Render(content string, n *Node) string {
	if r.Replacement == nil {
		return content
	}
	return r.Replacement(content, n)
}
