// Package enum implements label-coded fields: a small fixed set of named
// labels mapped to dense integer codes for storage. A Definition fixes the
// label set at model-definition time; a Value carries one current label for a
// record instance. Storage backends persist the integer code and translate
// back to labels on read.
package enum

import "errors"

// Definition errors.
var (
	ErrNoLabels       = errors.New("definition requires at least one label")
	ErrEmptyLabel     = errors.New("label must not be empty")
	ErrDuplicateLabel = errors.New("duplicate label")
)

// Lookup errors.
var (
	ErrUnknownLabel = errors.New("unknown label")
	ErrUnknownCode  = errors.New("unknown code")
)

// Definition is an ordered, immutable set of labels. Each label's position in
// declaration order is its stored integer code, starting at 0. Appending
// labels preserves existing codes; removing or reordering labels breaks data
// already written with the old codes, so definitions only ever grow.
//
// A Definition is safe for concurrent use by multiple goroutines.
type Definition struct {
	labels  []string
	codes   map[string]int
	defCode int
}

// NewDefinition builds a Definition from labels in declaration order.
// Returns ErrNoLabels for an empty sequence, ErrEmptyLabel if any label is
// the empty string, and ErrDuplicateLabel if any label repeats.
// The first label is the default until WithDefault overrides it.
func NewDefinition(labels ...string) (Definition, error) {
	if len(labels) == 0 {
		return Definition{}, ErrNoLabels
	}
	codes := make(map[string]int, len(labels))
	for i, label := range labels {
		if label == "" {
			return Definition{}, ErrEmptyLabel
		}
		if _, dup := codes[label]; dup {
			return Definition{}, ErrDuplicateLabel
		}
		codes[label] = i
	}
	owned := make([]string, len(labels))
	copy(owned, labels)
	return Definition{labels: owned, codes: codes}, nil
}

// MustDefinition is NewDefinition that panics on error. Intended for
// package-level definitions fixed at compile time.
func MustDefinition(labels ...string) Definition {
	def, err := NewDefinition(labels...)
	if err != nil {
		panic(err)
	}
	return def
}

// WithDefault returns a copy of the definition whose default label is the
// given one. Returns ErrUnknownLabel if the label is not defined.
func (d Definition) WithDefault(label string) (Definition, error) {
	code, ok := d.codes[label]
	if !ok {
		return Definition{}, ErrUnknownLabel
	}
	d.defCode = code
	return d, nil
}

// Extend returns a new Definition with the given labels appended after the
// existing ones. Existing labels keep their codes, which is what makes
// extending a deployed definition safe for data already written. Returns
// ErrEmptyLabel or ErrDuplicateLabel under the same rules as NewDefinition.
func (d Definition) Extend(labels ...string) (Definition, error) {
	combined := make([]string, 0, len(d.labels)+len(labels))
	combined = append(combined, d.labels...)
	combined = append(combined, labels...)
	next, err := NewDefinition(combined...)
	if err != nil {
		return Definition{}, err
	}
	next.defCode = d.defCode
	return next, nil
}

// Len returns the number of labels.
func (d Definition) Len() int { return len(d.labels) }

// Default returns the default label.
func (d Definition) Default() string { return d.labels[d.defCode] }

// Contains reports whether label is defined.
func (d Definition) Contains(label string) bool {
	_, ok := d.codes[label]
	return ok
}

// Encode returns the integer code stored for label.
// Returns ErrUnknownLabel if the label is not defined.
func (d Definition) Encode(label string) (int, error) {
	code, ok := d.codes[label]
	if !ok {
		return 0, ErrUnknownLabel
	}
	return code, nil
}

// Decode returns the label stored as code. Returns ErrUnknownCode if code is
// outside [0, Len()), which indicates drift between stored data and the
// current definition (a label was removed, or data predates the definition).
func (d Definition) Decode(code int) (string, error) {
	if code < 0 || code >= len(d.labels) {
		return "", ErrUnknownCode
	}
	return d.labels[code], nil
}

// Labels returns the labels in declaration order. The slice is a copy.
func (d Definition) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Codes returns the full label-to-code mapping. Iterate Labels() for
// declaration order; the map is for lookup and display.
func (d Definition) Codes() map[string]int {
	out := make(map[string]int, len(d.codes))
	for label, code := range d.codes {
		out[label] = code
	}
	return out
}
