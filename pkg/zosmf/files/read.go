package files

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/restfiles"
	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

var readEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restfiles/fs{path}",
	"path",
)

// Read is the outcome of an unconditional file read.
type Read[R zosmf.Content] struct {
	Data          R
	Etag          string
	TransactionID string
}

// ReadIfNoneMatch is the outcome of a conditional file read. Data is nil
// when the server answered 304 Not Modified; Etag then still names the
// current version.
type ReadIfNoneMatch[R zosmf.Content] struct {
	Data          *R
	Etag          string
	TransactionID string
}

type readState struct {
	tx *transport.Client

	path                string
	search              string
	regexSearch         string
	searchCaseSensitive bool
	searchMaxReturn     *int
	dataType            zosmf.DataType
	encoding            string
	etag                string
}

func (s readState) fields() []endpoint.Field {
	fields := []endpoint.Field{
		endpoint.PathField("path", s.path),
	}
	fields = append(fields, restfiles.SearchFields(s.search, s.regexSearch, s.searchCaseSensitive, s.searchMaxReturn)...)
	fields = append(fields,
		restfiles.DataTypeField(s.dataType, s.encoding),
		endpoint.HeaderValue("etag", "If-None-Match", s.etag),
	)

	return fields
}

// ReadBuilder accumulates the parameters of an unconditional file read.
// The type parameter tracks the representation the response body decodes
// to; Text and Binary move between representations, IfNoneMatch moves to
// the conditional builder. Builders are values, so every step can be
// reused as a prefix for further requests.
type ReadBuilder[R zosmf.Content] struct {
	state readState
}

// Search returns only the lines matching the given literal pattern.
func (b ReadBuilder[R]) Search(pattern string) ReadBuilder[R] {
	b.state.search = pattern

	return b
}

// SearchRegex returns only the lines matching the given regular expression.
func (b ReadBuilder[R]) SearchRegex(pattern string) ReadBuilder[R] {
	b.state.regexSearch = pattern

	return b
}

// SearchCaseSensitive makes the search honor case. The server default is
// case-insensitive.
func (b ReadBuilder[R]) SearchCaseSensitive() ReadBuilder[R] {
	b.state.searchCaseSensitive = true

	return b
}

// SearchMaxReturn caps the number of matching lines returned.
func (b ReadBuilder[R]) SearchMaxReturn(limit int) ReadBuilder[R] {
	b.state.searchMaxReturn = &limit

	return b
}

// Encoding requests server-side conversion to the given charset. Setting
// an encoding alone implies the text representation.
func (b ReadBuilder[R]) Encoding(charset string) ReadBuilder[R] {
	b.state.encoding = charset

	return b
}

// Text selects the text representation; the body decodes to a string.
func (b ReadBuilder[R]) Text() ReadBuilder[string] {
	b.state.dataType = zosmf.DataTypeText

	return ReadBuilder[string]{state: b.state}
}

// Binary selects the binary representation; the body is returned as raw
// bytes with no conversion.
func (b ReadBuilder[R]) Binary() ReadBuilder[[]byte] {
	b.state.dataType = zosmf.DataTypeBinary

	return ReadBuilder[[]byte]{state: b.state}
}

// IfNoneMatch makes the read conditional on the file having changed since
// the version named by etag. The resulting builder resolves 304 Not
// Modified as a nil body instead of an error.
func (b ReadBuilder[R]) IfNoneMatch(etag string) ReadIfNoneMatchBuilder[R] {
	b.state.etag = etag

	return ReadIfNoneMatchBuilder[R]{state: b.state}
}

// Run executes the read.
func (b ReadBuilder[R]) Run(ctx context.Context) (*Read[R], error) {
	req, err := readEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling file read: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", b.state.path, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", b.state.path, err)
	}

	data, err := endpoint.Body[R](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding file %s: %w", b.state.path, err)
	}

	return &Read[R]{Data: data, Etag: meta.Etag, TransactionID: meta.TransactionID}, nil
}

// ReadIfNoneMatchBuilder is the conditional variant of ReadBuilder. It
// offers the same representation transitions but resolves 304 responses
// as success with a nil body.
type ReadIfNoneMatchBuilder[R zosmf.Content] struct {
	state readState
}

// Text selects the text representation.
func (b ReadIfNoneMatchBuilder[R]) Text() ReadIfNoneMatchBuilder[string] {
	b.state.dataType = zosmf.DataTypeText

	return ReadIfNoneMatchBuilder[string]{state: b.state}
}

// Binary selects the binary representation.
func (b ReadIfNoneMatchBuilder[R]) Binary() ReadIfNoneMatchBuilder[[]byte] {
	b.state.dataType = zosmf.DataTypeBinary

	return ReadIfNoneMatchBuilder[[]byte]{state: b.state}
}

// Run executes the conditional read.
func (b ReadIfNoneMatchBuilder[R]) Run(ctx context.Context) (*ReadIfNoneMatch[R], error) {
	req, err := readEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling file read: %w", err)
	}

	req.AllowNotModified = true

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", b.state.path, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", b.state.path, err)
	}

	data, err := endpoint.BodyIfModified[R](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding file %s: %w", b.state.path, err)
	}

	return &ReadIfNoneMatch[R]{Data: data, Etag: meta.Etag, TransactionID: meta.TransactionID}, nil
}
