package htmlcompare

import "slices"

// TextAttribute is the pseudo attribute that switches off text comparison
// when listed in IgnoreRule.Attributes.
const TextAttribute = "text()"

// IgnoreRule exempts parts of a document from matching.
//
// An empty TagName applies the rule to every tag. A nil Attributes or
// ClassNames slice means the rule does not scope attributes or classes,
// while an empty non nil slice scopes them to nothing. A rule with only a
// TagName ignores that tag completely.
type IgnoreRule struct {
	TagName    string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	ClassNames []string `json:"classes,omitempty" yaml:"classes,omitempty"`
}

func (r IgnoreRule) appliesTo(tag string) bool {
	return r.TagName == "" || r.TagName == tag
}

// IgnoreRules is an insertion ordered list of rules.
//
// Lookups for text, attributes and classes stop at the first rule that is
// structurally relevant and return that rule's verdict, even when the
// verdict is "not ignored". A later rule for the same attribute or class is
// never consulted, so the order rules are added in matters.
type IgnoreRules []IgnoreRule

// Add appends rules in argument order.
func (rules *IgnoreRules) Add(r ...IgnoreRule) {
	*rules = append(*rules, r...)
}

// IgnoreTags adds a full ignore rule for every tag.
func (rules *IgnoreRules) IgnoreTags(tags ...string) {
	for _, tag := range tags {
		rules.Add(IgnoreRule{TagName: tag})
	}
}

// TagIgnored reports whether tag is exempt from matching altogether.
func (rules IgnoreRules) TagIgnored(tag string) bool {
	for _, r := range rules {
		if r.TagName != "" && r.TagName == tag && r.Attributes == nil && r.ClassNames == nil {
			return true
		}
	}
	return false
}

// TextIgnored reports whether the direct text of tag is exempt. The first
// rule listing text() decides.
func (rules IgnoreRules) TextIgnored(tag string) bool {
	return rules.AttributeIgnored(tag, TextAttribute)
}

// AttributeIgnored reports whether the attribute key on tag is exempt. The
// first rule listing key decides.
func (rules IgnoreRules) AttributeIgnored(tag, key string) bool {
	for _, r := range rules {
		if slices.Contains(r.Attributes, key) {
			return r.appliesTo(tag)
		}
	}
	return false
}

// ClassIgnored reports whether className on tag is exempt. The first rule
// for tag that scopes classes decides.
func (rules IgnoreRules) ClassIgnored(tag, className string) bool {
	for _, r := range rules {
		if r.appliesTo(tag) && r.ClassNames != nil {
			return slices.Contains(r.ClassNames, className)
		}
	}
	return false
}
