// Package htmlcompare validates, that a current html document is a
// structural and content equivalent of an original one.
//
// Both documents are seen as flat lists of elements. Every element of the
// current document needs an element in the original with the same tag,
// matching attributes and matching direct text. Ignore rules exempt tags,
// attributes, classes and text from the comparison.
package htmlcompare

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/foomo/htmlcompare/internal/log"
)

// Validator compares a current html document with an original one.
//
// Configure it before use. Once configured Validate may be called from
// multiple goroutines, adding rules while validations run is not safe.
type Validator struct {
	rules         IgnoreRules
	countElements bool
	logger        log.Logger
	metrics       *Metrics
	cache         *lru.Cache[[sha256.Size]byte, *Document]
	loader        *Loader
}

// Option configures a Validator
type Option func(v *Validator) error

// WithIgnoreRules adds ignore rules in the given order.
func WithIgnoreRules(rules ...IgnoreRule) Option {
	return func(v *Validator) error {
		v.rules.Add(rules...)
		return nil
	}
}

// WithIgnoredTags ignores all elements with the given tags.
func WithIgnoredTags(tags ...string) Option {
	return func(v *Validator) error {
		v.rules.IgnoreTags(tags...)
		return nil
	}
}

// WithoutElementCount disables the element count check.
func WithoutElementCount() Option {
	return func(v *Validator) error {
		v.countElements = false
		return nil
	}
}

// WithLogger sets the logger, the global one is used otherwise.
func WithLogger(l log.Logger) Option {
	return func(v *Validator) error {
		v.logger = l
		return nil
	}
}

// WithMetrics tracks validations with m.
func WithMetrics(m *Metrics) Option {
	return func(v *Validator) error {
		v.metrics = m
		return nil
	}
}

// WithDocumentCache keeps up to size parsed documents, keyed by a hash of
// their source. Useful when many documents are validated against the same
// original.
func WithDocumentCache(size int) Option {
	return func(v *Validator) error {
		cache, errCache := lru.New[[sha256.Size]byte, *Document](size)
		if errCache != nil {
			return fmt.Errorf("could not create document cache: %w", errCache)
		}
		v.cache = cache
		return nil
	}
}

// WithLoader sets the loader used by ValidateURL.
func WithLoader(l *Loader) Option {
	return func(v *Validator) error {
		v.loader = l
		return nil
	}
}

// New creates a validator, the element count check is on by default.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		countElements: true,
		logger:        log.GetLogger(),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	if v.loader == nil {
		v.loader = NewLoader()
	}
	return v, nil
}

// IgnoreTags ignores all elements with the given tags.
func (v *Validator) IgnoreTags(tags ...string) {
	v.rules.IgnoreTags(tags...)
}

// IgnoreElements adds ignore rules.
func (v *Validator) IgnoreElements(rules ...IgnoreRule) {
	v.rules.Add(rules...)
}

// IgnoreElementCount disables the element count check.
func (v *Validator) IgnoreElementCount() {
	v.countElements = false
}

// Rules returns a copy of the configured ignore rules.
func (v *Validator) Rules() IgnoreRules {
	return append(IgnoreRules{}, v.rules...)
}

// ValidateString tells, if current is equivalent to original.
func (v *Validator) ValidateString(current, original string) (bool, error) {
	r, err := v.Validate([]byte(current), []byte(original))
	if err != nil {
		return false, err
	}
	return r.Valid, nil
}

// ValidateURL loads both documents with the validator's loader and
// validates them.
func (v *Validator) ValidateURL(ctx context.Context, currentLocation, originalLocation string) (*Report, error) {
	current, errCurrent := v.loader.Load(ctx, currentLocation)
	if errCurrent != nil {
		return nil, fmt.Errorf("could not load current document: %w", errCurrent)
	}
	original, errOriginal := v.loader.Load(ctx, originalLocation)
	if errOriginal != nil {
		return nil, fmt.Errorf("could not load original document: %w", errOriginal)
	}
	return v.Validate(current, original)
}

// Validate compares current with original. A failed validation is not an
// error, it is reported with Report.Valid false. Errors are parse faults.
func (v *Validator) Validate(current, original []byte) (r *Report, err error) {
	start := time.Now()
	originalDoc, errOriginal := v.parse(original)
	if errOriginal != nil {
		return nil, errOriginal
	}
	currentDoc, errCurrent := v.parse(current)
	if errCurrent != nil {
		return nil, errCurrent
	}
	r = v.validateDocuments(currentDoc, originalDoc)
	if v.metrics != nil {
		v.metrics.observe(r, time.Since(start))
	}
	return r, nil
}

func (v *Validator) validateDocuments(current, original *Document) *Report {
	r := &Report{
		Valid:         true,
		CurrentCount:  current.Len(),
		OriginalCount: original.Len(),
	}
	if v.countElements && r.CurrentCount != r.OriginalCount {
		r.Valid = false
		r.addFailure(FailureKindElementCount, "", "", nil,
			"current elements' size is different from original's - current[", r.CurrentCount, "] original[", r.OriginalCount, "]")
		v.logger.Info(map[string]any{
			"current":  r.CurrentCount,
			"original": r.OriginalCount,
		}, "element count mismatch")
		return r
	}
	references := original.Elements()
	for _, el := range current.Elements() {
		m := newMatcher(v.rules)
		if m.matchesAnyReference(el, references) {
			continue
		}
		r.Valid = false
		kind := m.notFound.kind()
		r.addFailure(kind, el.Tag(), el.String(), m.notFound, "element not found")
		v.logger.Debug(map[string]any{
			"element":  el.String(),
			"kind":     string(kind),
			"notFound": map[string]string(m.notFound),
		}, "element not found")
	}
	return r
}

func (v *Validator) parse(source []byte) (*Document, error) {
	if v.cache == nil {
		return parseBytes(source)
	}
	key := sha256.Sum256(source)
	if doc, ok := v.cache.Get(key); ok {
		return doc, nil
	}
	doc, err := parseBytes(source)
	if err != nil {
		return nil, err
	}
	v.cache.Add(key, doc)
	return doc, nil
}
