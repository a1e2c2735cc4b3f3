package datasets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/restfiles"
	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

var writeEndpoint = endpoint.MustNew(http.MethodPut, "/zosmf/restfiles/ds/{volume}{dataset}{member}",
	"volume", "dataset", "member",
)

// Write is the outcome of a data set write. Etag names the version the
// write produced.
type Write struct {
	Etag          string
	SessionRef    string
	TransactionID string
}

type writeState struct {
	tx *transport.Client

	dataset        string
	volume         string
	member         string
	data           []byte
	dataType       zosmf.DataType
	encoding       string
	crlf           bool
	etag           string
	migratedRecall zosmf.MigratedRecall
	obtainEnq      zosmf.ObtainEnq
	sessionRef     string
	releaseEnq     bool
	dsnameEncoding string
}

func (s writeState) fields() []endpoint.Field {
	return []endpoint.Field{
		endpoint.PathField("volume", s.volume),
		endpoint.PathField("dataset", s.dataset),
		endpoint.PathField("member", s.member),
		endpoint.HeaderValue("etag", "If-Match", s.etag),
		endpoint.HeaderValue("migrated_recall", "X-IBM-Migrated-Recall", string(s.migratedRecall)),
		endpoint.HeaderValue("obtain_enq", "X-IBM-Obtain-ENQ", string(s.obtainEnq)),
		endpoint.HeaderValue("session_ref", "X-IBM-Session-Ref", s.sessionRef),
		endpoint.FlagHeader("release_enq", "X-IBM-Release-ENQ", s.releaseEnq),
		endpoint.HeaderValue("dsname_encoding", "X-IBM-Dsname-Encoding", s.dsnameEncoding),
		restfiles.WriteDataTypeField(s.dataType, s.encoding, s.crlf, s.data),
	}
}

// WriteBuilder accumulates the parameters of a data set write.
type WriteBuilder struct {
	state writeState
}

// Volume writes the data set on the given uncataloged volume.
func (b WriteBuilder) Volume(volume string) WriteBuilder {
	b.state.volume = restfiles.VolumeQualifier(volume)

	return b
}

// Member writes the given member of a partitioned data set.
func (b WriteBuilder) Member(member string) WriteBuilder {
	b.state.member = restfiles.MemberQualifier(member)

	return b
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

// Record writes the given bytes as length prefixed records.
func (b WriteBuilder) Record(data []byte) WriteBuilder {
	b.state.data = data
	b.state.dataType = zosmf.DataTypeRecord

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

// IfMatch makes the write conditional on the data set still being at the
// version named by etag. A stale etag fails with 412 Precondition Failed.
func (b WriteBuilder) IfMatch(etag string) WriteBuilder {
	b.state.etag = etag

	return b
}

// MigratedRecall controls how a migrated data set is handled.
func (b WriteBuilder) MigratedRecall(recall zosmf.MigratedRecall) WriteBuilder {
	b.state.migratedRecall = recall

	return b
}

// ObtainEnq serializes access by holding the given ENQ across the write.
func (b WriteBuilder) ObtainEnq(enq zosmf.ObtainEnq) WriteBuilder {
	b.state.obtainEnq = enq

	return b
}

// SessionRef associates the write with an existing ENQ session.
func (b WriteBuilder) SessionRef(ref string) WriteBuilder {
	b.state.sessionRef = ref

	return b
}

// ReleaseEnq releases the session ENQ once the write completes.
func (b WriteBuilder) ReleaseEnq() WriteBuilder {
	b.state.releaseEnq = true

	return b
}

// DsnameEncoding names the charset the data set name is encoded in.
func (b WriteBuilder) DsnameEncoding(charset string) WriteBuilder {
	b.state.dsnameEncoding = charset

	return b
}

// Run executes the write.
func (b WriteBuilder) Run(ctx context.Context) (*Write, error) {
	req, err := writeEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling dataset write: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("writing dataset %s: %w", b.state.dataset, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("writing dataset %s: %w", b.state.dataset, err)
	}

	etag, err := meta.RequireEtag()
	if err != nil {
		return nil, fmt.Errorf("writing dataset %s: %w", b.state.dataset, err)
	}

	return &Write{Etag: etag, SessionRef: meta.SessionRef, TransactionID: meta.TransactionID}, nil
}
