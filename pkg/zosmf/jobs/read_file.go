package jobs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/restfiles"
	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

var readFileEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restjobs/jobs/{subsystem}{identifier}/files/{file}/records",
	"subsystem", "identifier", "file",
)

// FileContent is the outcome of a spool file read.
type FileContent[R zosmf.Content] struct {
	Data R
}

type readFileState struct {
	tx *transport.Client

	identifier          Identifier
	subsystem           string
	file                string
	dataType            zosmf.DataType
	encoding            string
	search              string
	regexSearch         string
	searchCaseSensitive bool
	searchMaxReturn     *int
	recordRange         string
}

func (s readFileState) fields() []endpoint.Field {
	fields := []endpoint.Field{
		endpoint.PathField("subsystem", s.subsystem),
		endpoint.PathField("identifier", s.identifier.String()),
		endpoint.PathField("file", s.file),
		endpoint.QueryValue("mode", "mode", string(s.dataType)),
		endpoint.QueryValue("encoding", "fileEncoding", s.encoding),
	}
	fields = append(fields, restfiles.SearchFields(s.search, s.regexSearch, s.searchCaseSensitive, s.searchMaxReturn)...)
	fields = append(fields,
		endpoint.HeaderValue("record_range", "X-IBM-Record-Range", s.recordRange),
	)

	return fields
}

// ReadFileBuilder accumulates the parameters of a spool file read. The
// type parameter tracks the representation the body decodes to.
type ReadFileBuilder[R zosmf.Content] struct {
	state readFileState
}

// Subsystem targets the read at a secondary JES subsystem.
func (b ReadFileBuilder[R]) Subsystem(name string) ReadFileBuilder[R] {
	b.state.subsystem = "-" + name + "/"

	return b
}

// Encoding requests server-side conversion to the given charset.
func (b ReadFileBuilder[R]) Encoding(charset string) ReadFileBuilder[R] {
	b.state.encoding = charset

	return b
}

// Search returns only the records matching the given literal pattern.
func (b ReadFileBuilder[R]) Search(pattern string) ReadFileBuilder[R] {
	b.state.search = pattern

	return b
}

// SearchRegex returns only the records matching the given regular
// expression.
func (b ReadFileBuilder[R]) SearchRegex(pattern string) ReadFileBuilder[R] {
	b.state.regexSearch = pattern

	return b
}

// SearchCaseSensitive makes the search honor case. The server default is
// case-insensitive.
func (b ReadFileBuilder[R]) SearchCaseSensitive() ReadFileBuilder[R] {
	b.state.searchCaseSensitive = true

	return b
}

// SearchMaxReturn caps the number of matching records returned.
func (b ReadFileBuilder[R]) SearchMaxReturn(limit int) ReadFileBuilder[R] {
	b.state.searchMaxReturn = &limit

	return b
}

// RecordRange reads only the given record range, for example "0-249".
func (b ReadFileBuilder[R]) RecordRange(rangeSpec string) ReadFileBuilder[R] {
	b.state.recordRange = rangeSpec

	return b
}

// Text selects the text representation; the body decodes to a string.
func (b ReadFileBuilder[R]) Text() ReadFileBuilder[string] {
	b.state.dataType = zosmf.DataTypeText

	return ReadFileBuilder[string]{state: b.state}
}

// Binary selects the binary representation.
func (b ReadFileBuilder[R]) Binary() ReadFileBuilder[[]byte] {
	b.state.dataType = zosmf.DataTypeBinary

	return ReadFileBuilder[[]byte]{state: b.state}
}

// Record selects the record representation; each record is preceded by
// its four byte length prefix.
func (b ReadFileBuilder[R]) Record() ReadFileBuilder[[]byte] {
	b.state.dataType = zosmf.DataTypeRecord

	return ReadFileBuilder[[]byte]{state: b.state}
}

// Run executes the read.
func (b ReadFileBuilder[R]) Run(ctx context.Context) (*FileContent[R], error) {
	req, err := readFileEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling spool file read: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reading spool file %s of job %s: %w", b.state.file, b.state.identifier, err)
	}

	data, err := endpoint.Body[R](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding spool file %s: %w", b.state.file, err)
	}

	return &FileContent[R]{Data: data}, nil
}
