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

var writeEndpoint = endpoint.MustNew(http.MethodPut, "/zosmf/restfiles/fs{path}",
	"path",
)

// Write is the outcome of a file write. Etag names the version the write
// produced.
type Write struct {
	Etag          string
	TransactionID string
}

type writeState struct {
	tx *transport.Client

	path     string
	data     []byte
	dataType zosmf.DataType
	encoding string
	crlf     bool
	etag     string
}

func (s writeState) fields() []endpoint.Field {
	return []endpoint.Field{
		endpoint.PathField("path", s.path),
		endpoint.HeaderValue("etag", "If-Match", s.etag),
		restfiles.WriteDataTypeField(s.dataType, s.encoding, s.crlf, s.data),
	}
}

// WriteBuilder accumulates the parameters of a file write. Exactly one of
// Text, Binary, or the zero default (an empty text body, which truncates
// the file) provides the content.
type WriteBuilder struct {
	state writeState
}

// Text writes the given string as text content.
func (b WriteBuilder) Text(data string) WriteBuilder {
	b.state.data = []byte(data)
	b.state.dataType = zosmf.DataTypeText

	return b
}

// Binary writes the given bytes untranslated.
func (b WriteBuilder) Binary(data []byte) WriteBuilder {
	b.state.data = data
	b.state.dataType = zosmf.DataTypeBinary

	return b
}

// Encoding requests server-side conversion from the given charset. Only
// meaningful for text writes.
func (b WriteBuilder) Encoding(charset string) WriteBuilder {
	b.state.encoding = charset

	return b
}

// CRLF marks the text content as using CRLF line endings so the server
// normalizes them.
func (b WriteBuilder) CRLF() WriteBuilder {
	b.state.crlf = true

	return b
}

// IfMatch makes the write conditional on the file still being at the
// version named by etag. A stale etag fails with 412 Precondition Failed.
func (b WriteBuilder) IfMatch(etag string) WriteBuilder {
	b.state.etag = etag

	return b
}

// Run executes the write.
func (b WriteBuilder) Run(ctx context.Context) (*Write, error) {
	req, err := writeEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling file write: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("writing file %s: %w", b.state.path, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("writing file %s: %w", b.state.path, err)
	}

	etag, err := meta.RequireEtag()
	if err != nil {
		return nil, fmt.Errorf("writing file %s: %w", b.state.path, err)
	}

	return &Write{Etag: etag, TransactionID: meta.TransactionID}, nil
}
