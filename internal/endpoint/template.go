// Package endpoint implements the declarative request engine shared by
// every z/OSMF endpoint wrapper: a path template compiler, an ordered field
// descriptor model, a pure request assembly routine, and the response
// resolution rules that turn a transport response into typed data plus
// protocol metadata.
package endpoint

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrEmptyPlaceholder     = errors.New("empty placeholder in path template")
	ErrUnclosedPlaceholder  = errors.New("unclosed placeholder in path template")
	ErrUnboundPlaceholder   = errors.New("path template placeholder has no matching path field")
	ErrUnusedPathField      = errors.New("declared path field does not appear in the path template")
	ErrDuplicatePlaceholder = errors.New("placeholder appears more than once in the path template")
	ErrDuplicatePathField   = errors.New("path field declared more than once")
	ErrUndeclaredPathField  = errors.New("path field was not declared on the descriptor")
)

// segment is one token of a parsed template: literal text or a placeholder.
type segment struct {
	text        string
	placeholder bool
}

// Template is a path template parsed once at descriptor construction time.
// Placeholders use the form {name} and may be directly adjacent with no
// literal separator; any delimiter a substituted value needs (brackets,
// leading dashes, trailing slashes) must already be part of that value.
type Template struct {
	raw      string
	segments []segment
}

// ParseTemplate parses a path template string.
func ParseTemplate(raw string) (*Template, error) {
	var segments []segment

	rest := raw

	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			segments = append(segments, segment{text: rest})

			break
		}

		if open > 0 {
			segments = append(segments, segment{text: rest[:open]})
		}

		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnclosedPlaceholder, raw)
		}

		name := rest[open+1 : open+closing]
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyPlaceholder, raw)
		}

		segments = append(segments, segment{text: name, placeholder: true})
		rest = rest[open+closing+1:]
	}

	return &Template{raw: raw, segments: segments}, nil
}

// Placeholders returns the placeholder names in template order.
func (t *Template) Placeholders() []string {
	var names []string

	for _, seg := range t.segments {
		if seg.placeholder {
			names = append(names, seg.text)
		}
	}

	return names
}

// Resolve substitutes the stored value of each placeholder-bound field into
// the template. Literal segments are copied verbatim; a placeholder whose
// field is unset resolves to the empty string, since omission of an
// optional path qualifier is positional, never an error. Substitution order
// follows the template, independent of field declaration order.
func (t *Template) Resolve(values map[string]string) string {
	var builder strings.Builder

	for _, seg := range t.segments {
		if seg.placeholder {
			builder.WriteString(values[seg.text])
		} else {
			builder.WriteString(seg.text)
		}
	}

	return builder.String()
}

// String returns the raw template text.
func (t *Template) String() string {
	return t.raw
}
