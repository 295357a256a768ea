package enum

import "encoding/json"

// Value is the current label of one record's field, backed by its integer
// code. Values have value semantics: Set returns an updated copy rather than
// mutating in place, so a Value embedded in an entity struct follows whatever
// concurrency discipline the entity already uses.
type Value struct {
	def  Definition
	code int
}

// NewValue returns a Value holding the definition's default label.
func NewValue(def Definition) Value {
	return Value{def: def, code: def.defCode}
}

// ValueOf returns a Value holding the given label.
// Returns ErrUnknownLabel if the label is not defined.
func ValueOf(def Definition, label string) (Value, error) {
	code, err := def.Encode(label)
	if err != nil {
		return Value{}, err
	}
	return Value{def: def, code: code}, nil
}

// ValueFromCode returns a Value holding the label stored as code. Returns
// ErrUnknownCode if the code is outside the definition, the error a backend
// should surface when hydrating drifted data.
func ValueFromCode(def Definition, code int) (Value, error) {
	if _, err := def.Decode(code); err != nil {
		return Value{}, err
	}
	return Value{def: def, code: code}, nil
}

// Is reports whether the value currently holds label. Does not mutate.
// An undefined label is simply not the current one; no error.
func (v Value) Is(label string) bool {
	code, err := v.def.Encode(label)
	if err != nil {
		return false
	}
	return v.code == code
}

// Set returns a copy of the value holding label. Any label is reachable from
// any other; this is a categorical field, not a guarded state machine.
// Returns ErrUnknownLabel if the label is not defined. Persistence is the
// storage collaborator's concern, not this method's.
func (v Value) Set(label string) (Value, error) {
	code, err := v.def.Encode(label)
	if err != nil {
		return Value{}, err
	}
	v.code = code
	return v, nil
}

// Label returns the current label.
func (v Value) Label() string { return v.def.labels[v.code] }

// Code returns the integer code a backend should persist.
func (v Value) Code() int { return v.code }

// Definition returns the definition the value is bound to.
func (v Value) Definition() Definition { return v.def }

// String implements fmt.Stringer.
func (v Value) String() string { return v.Label() }

// MarshalJSON renders the value as its label. Values do not unmarshal:
// reconstructing one requires the definition, so backends use ValueFromCode
// and ValueOf instead.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Label())
}
