// Package engine implements the rule-based HTML to Markdown conversion
// engine. A RuleSet resolves the single rule governing each node and the
// engine folds the tree bottom-up, handing every rule the final Markdown of
// the node's children.
package engine

import (
	"github.com/fwojciec/mdarchive"
)

// RuleSet is an ordered collection of conversion rules. Custom rules are
// checked first, most recently added first, then the built-in rules in
// fixed priority order, then the generic pass-through rule.
//
// A RuleSet is immutable once built and is safe for concurrent use.
type RuleSet struct {
	custom  []mdarchive.Rule
	builtin []mdarchive.Rule
	generic mdarchive.Rule
}

// NewRuleSet returns a RuleSet with the given custom rules registered in
// order. Later rules take precedence over earlier ones.
func NewRuleSet(custom ...mdarchive.Rule) *RuleSet {
	s := &RuleSet{
		builtin: builtinRules(),
		generic: genericRule{},
	}
	for i := len(custom) - 1; i >= 0; i-- {
		if custom[i] != nil {
			s.custom = append(s.custom, custom[i])
		}
	}
	return s
}

// Resolve returns the rule governing n. It never returns nil.
func (s *RuleSet) Resolve(n *mdarchive.Node) mdarchive.Rule {
	for _, r := range s.custom {
		if r.Match(n) {
			return r
		}
	}
	for _, r := range s.builtin {
		if r.Match(n) {
			return r
		}
	}
	return s.generic
}

// builtinRules returns the default rules in priority order. Math must come
// before headings so a heading carrying a formula renders as math.
func builtinRules() []mdarchive.Rule {
	return []mdarchive.Rule{
		mathRule{},
		headingRule{},
		tableRule{},
		paragraphRule{},
		delimiterRule{name: "strong", kind: mdarchive.KindStrong, delim: "**"},
		delimiterRule{name: "emphasis", kind: mdarchive.KindEmphasis, delim: "*"},
		anchorRule{},
		imageRule{},
		codeRule{},
		preformattedRule{},
		lineBreakRule{},
		thematicBreakRule{},
		listRule{},
		listItemRule{},
		blockquoteRule{},
	}
}
