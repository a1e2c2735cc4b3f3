package endpoint

import (
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

// Kind classifies where a field's value lands on the wire. A field has
// exactly one classification; cross-field effects go through Mutate.
type Kind int

const (
	// KindInert fields never reach the wire on their own; they exist to
	// feed the Value funcs or Mutate hooks of other fields.
	KindInert Kind = iota
	// KindPath fields substitute into a path template placeholder of the
	// same name.
	KindPath
	// KindQuery fields append (Key, value) query pairs when set.
	KindQuery
	// KindHeader fields set the Key header when set.
	KindHeader
)

// Field describes one declared field of an endpoint: its classification,
// the wire key it maps to, and how to obtain its current value. Fields are
// evaluated in declaration order, which fixes query and header order on the
// wire.
type Field struct {
	Name string
	Kind Kind
	// Key is the query parameter or header name for KindQuery/KindHeader.
	Key string
	// Value returns the wire value and whether the field is set. An unset
	// optional field is skipped entirely, never emitted as an empty string.
	Value func() (string, bool)
	// Values returns multiple wire values for repeatable query fields, one
	// pair per element in insertion order. Takes precedence over Value.
	Values func() []string
	// Mutate is the escape hatch for request edits a single classification
	// cannot express: composite headers derived from several fields, JSON
	// action bodies, raw content bodies. Mutators run after the query and
	// header passes, in declaration order.
	Mutate func(*transport.Request)
}

// PathField declares a path field with its current value. An empty value
// means unset; the template resolves it to the empty string.
func PathField(name, value string) Field {
	return Field{
		Name: name,
		Kind: KindPath,
		Value: func() (string, bool) {
			return value, value != ""
		},
	}
}

// QueryField declares a scalar query field. ok reports whether it is set.
func QueryField(name, key, value string, ok bool) Field {
	return Field{
		Name: name,
		Kind: KindQuery,
		Key:  key,
		Value: func() (string, bool) {
			return value, ok
		},
	}
}

// QueryValue declares a query field that is set whenever value is non-empty.
func QueryValue(name, key, value string) Field {
	return QueryField(name, key, value, value != "")
}

// RepeatableQueryField declares a query field emitting one pair per element.
func RepeatableQueryField(name, key string, values []string) Field {
	return Field{
		Name:   name,
		Kind:   KindQuery,
		Key:    key,
		Values: func() []string { return values },
	}
}

// HeaderField declares a scalar header field. ok reports whether it is set.
func HeaderField(name, key, value string, ok bool) Field {
	return Field{
		Name: name,
		Kind: KindHeader,
		Key:  key,
		Value: func() (string, bool) {
			return value, ok
		},
	}
}

// HeaderValue declares a header field that is set whenever value is non-empty.
func HeaderValue(name, key, value string) Field {
	return HeaderField(name, key, value, value != "")
}

// FlagHeader declares a header that is emitted as "true" when set.
func FlagHeader(name, key string, set bool) Field {
	return HeaderField(name, key, "true", set)
}

// MutatorField declares a field whose only wire effect is its mutator.
func MutatorField(name string, mutate func(*transport.Request)) Field {
	return Field{Name: name, Kind: KindInert, Mutate: mutate}
}
