package htmlcompare

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

const attrClass = "class"

// matcher holds the state of matching one current element.
type matcher struct {
	rules    IgnoreRules
	notFound diagnostics
}

func newMatcher(rules IgnoreRules) *matcher {
	return &matcher{rules: rules, notFound: diagnostics{}}
}

// matchesAnyReference looks for one reference element that has the tag of
// current and matches both its attributes and its text.
func (m *matcher) matchesAnyReference(current *Element, references []*Element) bool {
	if m.rules.TagIgnored(current.Tag()) {
		return true
	}
	for _, reference := range references {
		m.notFound.put(NotFoundTag, current.Tag())
		if current.Tag() != reference.Tag() {
			continue
		}
		if m.attributesMatch(current, reference) && m.textMatches(current, reference) {
			m.notFound.remove(NotFoundTag, current.Tag())
			return true
		}
	}
	return false
}

func (m *matcher) attributesMatch(current, reference *Element) bool {
	if len(current.Attributes()) == 0 {
		return true
	}
	for _, attr := range current.Attributes() {
		if !m.attributeMatches(attr, reference) {
			return false
		}
	}
	return true
}

func (m *matcher) attributeMatches(attr html.Attribute, reference *Element) bool {
	if m.rules.AttributeIgnored(reference.Tag(), attr.Key) {
		return true
	}
	for _, referenceAttr := range reference.Attributes() {
		if attr.Key == attrClass && referenceAttr.Key == attrClass {
			// the keys are compared, not the values, so two class
			// attributes always match unless this is changed on purpose
			m.notFound.put(NotFoundClass, attr.Key)
			if m.classesMatch(attr.Key, referenceAttr.Key, reference.Tag()) {
				m.notFound.remove(NotFoundClass, attr.Key)
				return true
			}
			continue
		}
		m.notFound.put(NotFoundAttribute, attr.Key)
		if attr.Key != referenceAttr.Key {
			continue
		}
		m.notFound.remove(NotFoundAttribute, attr.Key)
		m.notFound.put(NotFoundAttributeValue, attr.Val)
		if attr.Val == referenceAttr.Val {
			m.notFound.remove(NotFoundAttributeValue, attr.Val)
			return true
		}
	}
	return false
}

// ClassesMatch compares two class attribute values as token sets. Tokens
// present on one side only are tolerated when rules ignore them for tag.
func ClassesMatch(rules IgnoreRules, current, reference, tag string) bool {
	return newMatcher(rules).classesMatch(current, reference, tag)
}

func (m *matcher) classesMatch(current, reference, tag string) bool {
	currentClasses := splitClasses(current)
	referenceClasses := splitClasses(reference)
	if slices.Equal(currentClasses, referenceClasses) {
		return true
	}
	for _, currentClass := range currentClasses {
		if !m.classMatches(tag, currentClass, referenceClasses) {
			return false
		}
	}
	for _, referenceClass := range referenceClasses {
		m.notFound.put(NotFoundClass, referenceClass)
		if !m.classMatches(tag, referenceClass, currentClasses) {
			return false
		}
	}
	return true
}

func (m *matcher) classMatches(tag, class string, classes []string) bool {
	if m.rules.ClassIgnored(tag, class) {
		return true
	}
	return slices.Contains(classes, class)
}

func splitClasses(value string) []string {
	classes := strings.Fields(value)
	slices.Sort(classes)
	return classes
}

func (m *matcher) textMatches(current, reference *Element) bool {
	if m.rules.TextIgnored(current.Tag()) {
		return true
	}
	currentTexts := current.TextNodes()
	referenceTexts := reference.TextNodes()
	if len(currentTexts) == 0 || len(referenceTexts) == 0 {
		return true
	}
	slices.Sort(currentTexts)
	slices.Sort(referenceTexts)
	if slices.Equal(currentTexts, referenceTexts) {
		return true
	}
	m.notFound.put(NotFoundText, "["+strings.Join(currentTexts, ", ")+"]")
	return false
}
