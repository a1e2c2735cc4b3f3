package endpoint

import (
	"fmt"

	"github.com/zosmf-community/zosmf-go/internal/transport"
)

// Descriptor is one endpoint kind: a fixed HTTP method, a path template
// parsed once, and the names of the path fields the template binds.
// Descriptors are immutable and shared; per-request field values are bound
// at Assemble time.
type Descriptor struct {
	method     string
	template   *Template
	pathFields map[string]bool
}

// New builds a Descriptor and validates the template against the declared
// path field names: every placeholder must be bound by exactly one declared
// field and every declared field must appear in the template. These are
// construction-time defects, rejected before any request can be built.
func New(method, rawTemplate string, pathFields ...string) (*Descriptor, error) {
	template, err := ParseTemplate(rawTemplate)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(pathFields))
	for _, name := range pathFields {
		if declared[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePathField, name)
		}

		declared[name] = true
	}

	seen := make(map[string]bool)

	for _, name := range template.Placeholders() {
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlaceholder, name)
		}

		seen[name] = true

		if !declared[name] {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnboundPlaceholder, name, rawTemplate)
		}
	}

	for name := range declared {
		if !seen[name] {
			return nil, fmt.Errorf("%w: %q missing from %q", ErrUnusedPathField, name, rawTemplate)
		}
	}

	return &Descriptor{
		method:     method,
		template:   template,
		pathFields: declared,
	}, nil
}

// MustNew is New for package-level descriptor variables; a defect here is a
// programming error caught at init.
func MustNew(method, rawTemplate string, pathFields ...string) *Descriptor {
	descriptor, err := New(method, rawTemplate, pathFields...)
	if err != nil {
		panic(err)
	}

	return descriptor
}

// Method returns the fixed HTTP method of this endpoint kind.
func (d *Descriptor) Method() string {
	return d.method
}

// Assemble produces the transport request for the current field values.
// It performs no I/O: identical field values always yield an identical
// request. Steps are order-significant:
//
//  1. resolve the path template from the path-classified fields,
//  2. append query pairs in field declaration order,
//  3. set headers in field declaration order,
//  4. run custom mutators in declaration order (mutators may add query
//     pairs, headers, or a body),
//
// so a body attached by a mutator can never clobber a header set in an
// earlier step.
func (d *Descriptor) Assemble(fields []Field) (*transport.Request, error) {
	pathValues := make(map[string]string)

	for _, field := range fields {
		if field.Kind != KindPath {
			continue
		}

		if !d.pathFields[field.Name] {
			return nil, fmt.Errorf("%w: %q", ErrUndeclaredPathField, field.Name)
		}

		if value, ok := field.Value(); ok {
			pathValues[field.Name] = value
		}
	}

	req := &transport.Request{
		Method: d.method,
		Path:   d.template.Resolve(pathValues),
	}

	for _, field := range fields {
		if field.Kind != KindQuery {
			continue
		}

		if field.Values != nil {
			for _, value := range field.Values() {
				req.AddQuery(field.Key, value)
			}

			continue
		}

		if value, ok := field.Value(); ok {
			req.AddQuery(field.Key, value)
		}
	}

	for _, field := range fields {
		if field.Kind != KindHeader {
			continue
		}

		if value, ok := field.Value(); ok {
			req.SetHeader(field.Key, value)
		}
	}

	for _, field := range fields {
		if field.Mutate != nil {
			field.Mutate(req)
		}
	}

	return req, nil
}
