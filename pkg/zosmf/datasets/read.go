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

var readEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restfiles/ds/{volume}{dataset}{member}",
	"volume", "dataset", "member",
)

// Read is the outcome of an unconditional data set read. Etag is set
// only when the read requested it or the server chose to send one.
type Read[R zosmf.Content] struct {
	Data          R
	Etag          string
	SessionRef    string
	TransactionID string
}

// ReadIfNoneMatch is the outcome of a conditional data set read. Data is
// nil when the server answered 304 Not Modified.
type ReadIfNoneMatch[R zosmf.Content] struct {
	Data          *R
	Etag          string
	SessionRef    string
	TransactionID string
}

type readState struct {
	tx *transport.Client

	dataset             string
	volume              string
	member              string
	search              string
	regexSearch         string
	searchCaseSensitive bool
	searchMaxReturn     *int
	dataType            zosmf.DataType
	encoding            string
	returnEtag          bool
	migratedRecall      zosmf.MigratedRecall
	obtainEnq           zosmf.ObtainEnq
	sessionRef          string
	releaseEnq          bool
	dsnameEncoding      string
	etag                string
}

func (s readState) fields() []endpoint.Field {
	fields := []endpoint.Field{
		endpoint.PathField("volume", s.volume),
		endpoint.PathField("dataset", s.dataset),
		endpoint.PathField("member", s.member),
	}
	fields = append(fields, restfiles.SearchFields(s.search, s.regexSearch, s.searchCaseSensitive, s.searchMaxReturn)...)
	fields = append(fields,
		endpoint.HeaderValue("etag", "If-None-Match", s.etag),
		restfiles.DataTypeField(s.dataType, s.encoding),
		endpoint.FlagHeader("return_etag", "X-IBM-Return-Etag", s.returnEtag),
		endpoint.HeaderValue("migrated_recall", "X-IBM-Migrated-Recall", string(s.migratedRecall)),
		endpoint.HeaderValue("obtain_enq", "X-IBM-Obtain-ENQ", string(s.obtainEnq)),
		endpoint.HeaderValue("session_ref", "X-IBM-Session-Ref", s.sessionRef),
		endpoint.FlagHeader("release_enq", "X-IBM-Release-ENQ", s.releaseEnq),
		endpoint.HeaderValue("dsname_encoding", "X-IBM-Dsname-Encoding", s.dsnameEncoding),
	)

	return fields
}

// ReadBuilder accumulates the parameters of an unconditional data set
// read. The type parameter tracks the representation the body decodes
// to; Text, Binary, and Record move between representations, IfNoneMatch
// moves to the conditional builder.
type ReadBuilder[R zosmf.Content] struct {
	state readState
}

// Volume reads the data set from the given uncataloged volume.
func (b ReadBuilder[R]) Volume(volume string) ReadBuilder[R] {
	b.state.volume = restfiles.VolumeQualifier(volume)

	return b
}

// Member reads the given member of a partitioned data set.
func (b ReadBuilder[R]) Member(member string) ReadBuilder[R] {
	b.state.member = restfiles.MemberQualifier(member)

	return b
}

// Search returns only the records matching the given literal pattern.
func (b ReadBuilder[R]) Search(pattern string) ReadBuilder[R] {
	b.state.search = pattern

	return b
}

// SearchRegex returns only the records matching the given regular
// expression.
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

// SearchMaxReturn caps the number of matching records returned.
func (b ReadBuilder[R]) SearchMaxReturn(limit int) ReadBuilder[R] {
	b.state.searchMaxReturn = &limit

	return b
}

// Encoding requests server-side conversion to the given charset.
func (b ReadBuilder[R]) Encoding(charset string) ReadBuilder[R] {
	b.state.encoding = charset

	return b
}

// ReturnEtag asks the server to report an entity tag even for data sets
// above its size threshold.
func (b ReadBuilder[R]) ReturnEtag() ReadBuilder[R] {
	b.state.returnEtag = true

	return b
}

// MigratedRecall controls how a migrated data set is handled.
func (b ReadBuilder[R]) MigratedRecall(recall zosmf.MigratedRecall) ReadBuilder[R] {
	b.state.migratedRecall = recall

	return b
}

// ObtainEnq serializes access by holding the given ENQ across the read.
func (b ReadBuilder[R]) ObtainEnq(enq zosmf.ObtainEnq) ReadBuilder[R] {
	b.state.obtainEnq = enq

	return b
}

// SessionRef associates the read with an existing ENQ session.
func (b ReadBuilder[R]) SessionRef(ref string) ReadBuilder[R] {
	b.state.sessionRef = ref

	return b
}

// ReleaseEnq releases the session ENQ once the read completes.
func (b ReadBuilder[R]) ReleaseEnq() ReadBuilder[R] {
	b.state.releaseEnq = true

	return b
}

// DsnameEncoding names the charset the data set name is encoded in.
func (b ReadBuilder[R]) DsnameEncoding(charset string) ReadBuilder[R] {
	b.state.dsnameEncoding = charset

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

// Record selects the record representation; each record is preceded by
// its four byte length prefix.
func (b ReadBuilder[R]) Record() ReadBuilder[[]byte] {
	b.state.dataType = zosmf.DataTypeRecord

	return ReadBuilder[[]byte]{state: b.state}
}

// IfNoneMatch makes the read conditional on the data set having changed
// since the version named by etag.
func (b ReadBuilder[R]) IfNoneMatch(etag string) ReadIfNoneMatchBuilder[R] {
	b.state.etag = etag

	return ReadIfNoneMatchBuilder[R]{state: b.state}
}

// Run executes the read.
func (b ReadBuilder[R]) Run(ctx context.Context) (*Read[R], error) {
	req, err := readEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling dataset read: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", b.state.dataset, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", b.state.dataset, err)
	}

	data, err := endpoint.Body[R](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset %s: %w", b.state.dataset, err)
	}

	return &Read[R]{
		Data:          data,
		Etag:          meta.Etag,
		SessionRef:    meta.SessionRef,
		TransactionID: meta.TransactionID,
	}, nil
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

// Record selects the record representation.
func (b ReadIfNoneMatchBuilder[R]) Record() ReadIfNoneMatchBuilder[[]byte] {
	b.state.dataType = zosmf.DataTypeRecord

	return ReadIfNoneMatchBuilder[[]byte]{state: b.state}
}

// Run executes the conditional read.
func (b ReadIfNoneMatchBuilder[R]) Run(ctx context.Context) (*ReadIfNoneMatch[R], error) {
	req, err := readEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling dataset read: %w", err)
	}

	req.AllowNotModified = true

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", b.state.dataset, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", b.state.dataset, err)
	}

	data, err := endpoint.BodyIfModified[R](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset %s: %w", b.state.dataset, err)
	}

	return &ReadIfNoneMatch[R]{
		Data:          data,
		Etag:          meta.Etag,
		SessionRef:    meta.SessionRef,
		TransactionID: meta.TransactionID,
	}, nil
}
