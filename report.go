package htmlcompare

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// FailureKind classifies why a validation failed.
type FailureKind string

const (
	// FailureKindElementCount current and original have a different number of elements
	FailureKindElementCount FailureKind = "element-count"
	// FailureKindElement no element with the same tag was found
	FailureKindElement FailureKind = "element"
	// FailureKindText elements were found, but their text differs
	FailureKindText FailureKind = "text"
	// FailureKindAttribute an attribute key is missing on every candidate
	FailureKindAttribute FailureKind = "attribute"
	// FailureKindAttributeValue an attribute exists, but its value differs
	FailureKindAttributeValue FailureKind = "attribute-value"
	// FailureKindClass class tokens differ
	FailureKindClass FailureKind = "class"
)

// keys of the not found scratch map
const (
	NotFoundTag            = "TAG"
	NotFoundText           = "TEXT"
	NotFoundClass          = "CLASS"
	NotFoundAttribute      = "ATTRIBUTE"
	NotFoundAttributeValue = "ATTRIBUTE_VALUE"
)

// diagnostics is the scratch map of the last thing that could not be
// confirmed while matching one element. A new one is used per element.
type diagnostics map[string]string

func (d diagnostics) put(key, value string) {
	d[key] = value
}

// remove deletes key only while it still maps to value.
func (d diagnostics) remove(key, value string) {
	if v, ok := d[key]; ok && v == value {
		delete(d, key)
	}
}

// kind picks the deepest matching stage that was reached.
func (d diagnostics) kind() FailureKind {
	switch {
	case d.has(NotFoundText):
		return FailureKindText
	case d.has(NotFoundAttributeValue):
		return FailureKindAttributeValue
	case d.has(NotFoundClass):
		return FailureKindClass
	case d.has(NotFoundAttribute):
		return FailureKindAttribute
	default:
		return FailureKindElement
	}
}

func (d diagnostics) has(key string) bool {
	_, ok := d[key]
	return ok
}

// Failure describes one reason a validation did not pass.
type Failure struct {
	Kind     FailureKind       `json:"kind" yaml:"kind"`
	Tag      string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Element  string            `json:"element,omitempty" yaml:"element,omitempty"`
	Comment  string            `json:"comment" yaml:"comment"`
	NotFound map[string]string `json:"notFound,omitempty" yaml:"notFound,omitempty"`
}

// Report of a validation of a current document against an original
type Report struct {
	Valid         bool       `json:"valid" yaml:"valid"`
	CurrentCount  int        `json:"currentCount" yaml:"currentCount"`
	OriginalCount int        `json:"originalCount" yaml:"originalCount"`
	Failures      []*Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

func (r *Report) addFailure(kind FailureKind, tag, element string, notFound diagnostics, comment ...interface{}) {
	r.Failures = append(r.Failures, &Failure{
		Kind:     kind,
		Tag:      tag,
		Element:  element,
		Comment:  fmt.Sprint(comment...),
		NotFound: notFound,
	})
}

// FailuresByKind counts failures per kind.
func (r *Report) FailuresByKind() map[FailureKind]int {
	counts := map[FailureKind]int{}
	for _, f := range r.Failures {
		counts[f.Kind]++
	}
	return counts
}

// Print a report
func (r *Report) Print(w io.Writer) {
	p := &printer{w: w, indnt: 0}
	result := "valid"
	if !r.Valid {
		result = "invalid"
	}
	p.println("validation report", result)
	p.println("------------------------------------------")
	for _, f := range r.Failures {
		p.println(f.Kind, ":", f.Comment)
		p.indent(1)
		if f.Element != "" {
			p.println(f.Element)
		}
		keys := make([]string, 0, len(f.NotFound))
		for k := range f.NotFound {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.println("not found", k, f.NotFound[k])
		}
		p.indent(-1)
	}
	p.println("------------------------------------------")
	p.println("current elements	", r.CurrentCount)
	p.println("original elements	", r.OriginalCount)
	p.println("failures		", len(r.Failures))
}

type printer struct {
	w     io.Writer
	indnt int
}

func (p *printer) indent(inc int) {
	p.indnt += inc
}

func (p *printer) println(values ...interface{}) {
	if p.w == nil {
		return
	}
	values = append([]interface{}{strings.Repeat("	", p.indnt)}, values...)
	fmt.Fprintln(p.w, values...)
}
