package htmlcompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreRulesTagIgnored(t *testing.T) {
	rules := IgnoreRules{}
	rules.IgnoreTags("script", "noscript")
	rules.Add(
		IgnoreRule{TagName: "div", Attributes: []string{"id"}},
		IgnoreRule{TagName: "span", Attributes: []string{}},
		IgnoreRule{Attributes: []string{"style"}},
	)
	assert.True(t, rules.TagIgnored("script"))
	assert.True(t, rules.TagIgnored("noscript"))
	assert.False(t, rules.TagIgnored("div"), "scoped to attributes")
	assert.False(t, rules.TagIgnored("span"), "an empty list is still a scope")
	assert.False(t, rules.TagIgnored(""), "a rule without tag never ignores a tag")
	assert.False(t, IgnoreRules(nil).TagIgnored("script"))
}

func TestIgnoreRulesAttributeIgnored(t *testing.T) {
	rules := IgnoreRules{
		{Attributes: []string{"data-test-id"}},
		{TagName: "a", Attributes: []string{"href", "target"}},
	}
	assert.True(t, rules.AttributeIgnored("div", "data-test-id"))
	assert.True(t, rules.AttributeIgnored("a", "href"))
	assert.True(t, rules.AttributeIgnored("a", "target"))
	assert.False(t, rules.AttributeIgnored("link", "href"))
	assert.False(t, rules.AttributeIgnored("a", "id"))
}

func TestIgnoreRulesFirstRuleDecides(t *testing.T) {
	rules := IgnoreRules{
		{TagName: "span", Attributes: []string{"id", TextAttribute}, ClassNames: []string{"x"}},
		{Attributes: []string{"id", TextAttribute}},
		{TagName: "div", ClassNames: []string{"c"}},
	}
	// the second rule would ignore id everywhere, but it is never reached
	assert.True(t, rules.AttributeIgnored("span", "id"))
	assert.False(t, rules.AttributeIgnored("div", "id"))
	assert.True(t, rules.TextIgnored("span"))
	assert.False(t, rules.TextIgnored("p"))
	// only the first rule for div with classes counts
	assert.True(t, rules.ClassIgnored("span", "x"))
	assert.False(t, rules.ClassIgnored("span", "c"))
	assert.True(t, rules.ClassIgnored("div", "c"))
}

func TestIgnoreRulesClassIgnored(t *testing.T) {
	rules := IgnoreRules{
		{TagName: "p", Attributes: []string{"id"}},
		{ClassNames: []string{"active", "hover"}},
		{TagName: "li", ClassNames: []string{"selected"}},
	}
	assert.True(t, rules.ClassIgnored("li", "active"))
	assert.False(t, rules.ClassIgnored("li", "selected"), "shadowed by the global class rule")
	assert.False(t, rules.ClassIgnored("p", "foo"))
	assert.False(t, IgnoreRules(nil).ClassIgnored("p", "foo"))
}

func TestIgnoreRulesTextIgnored(t *testing.T) {
	global := IgnoreRules{{Attributes: []string{TextAttribute}}}
	assert.True(t, global.TextIgnored("p"))
	assert.True(t, global.TextIgnored("h1"))

	scoped := IgnoreRules{{TagName: "p", Attributes: []string{TextAttribute}}}
	assert.True(t, scoped.TextIgnored("p"))
	assert.False(t, scoped.TextIgnored("h1"))
}
