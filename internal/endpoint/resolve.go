package endpoint

import (
	"encoding/json"
	"net/http"
	"reflect"
	"unicode/utf8"

	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

// Protocol metadata headers returned by the z/OSMF REST APIs.
const (
	HeaderEtag          = "Etag"
	HeaderTransactionID = "X-IBM-Txid"
	HeaderSessionRef    = "X-IBM-Session-Ref"
)

// Meta carries the protocol metadata extracted from a response envelope,
// independent of body decoding.
type Meta struct {
	Etag          string
	SessionRef    string
	TransactionID string
}

// Metadata extracts the protocol metadata headers. The transaction id is
// mandatory: its absence is a header decode error, never a silently empty
// id. Etag and session reference are optional and absent-as-empty.
func Metadata(resp *transport.Response) (Meta, error) {
	meta := Meta{
		Etag:       resp.Header.Get(HeaderEtag),
		SessionRef: resp.Header.Get(HeaderSessionRef),
	}

	meta.TransactionID = resp.Header.Get(HeaderTransactionID)
	if meta.TransactionID == "" {
		return Meta{}, &zosmf.HeaderError{Header: HeaderTransactionID, Err: zosmf.ErrMissingHeader}
	}

	return meta, nil
}

// RequireEtag promotes the optional entity tag to mandatory, for operations
// (like writes) whose result is unusable without one.
func (m Meta) RequireEtag() (string, error) {
	if m.Etag == "" {
		return "", &zosmf.HeaderError{Header: HeaderEtag, Err: zosmf.ErrMissingHeader}
	}

	return m.Etag, nil
}

// Body decodes the response body as the representation selected by R:
// string for text, []byte for binary or record data. Text bodies must be
// valid UTF-8; anything else is a body decode error.
func Body[R zosmf.Content](resp *transport.Response) (R, error) {
	var zero R

	// Kind, not a type assertion: R may be a defined type over string and
	// still needs the text validation.
	if reflect.TypeOf(zero).Kind() == reflect.String && !utf8.Valid(resp.Body) {
		return zero, &zosmf.DecodeError{
			Representation: "text",
			Err:            zosmf.ErrInvalidUTF8,
		}
	}

	return R(resp.Body), nil
}

// BodyIfModified decodes an optional representation: a 304 response yields
// nil without touching the body; anything else decodes as Body does.
func BodyIfModified[R zosmf.Content](resp *transport.Response) (*R, error) {
	if resp.StatusCode == http.StatusNotModified {
		return nil, nil
	}

	data, err := Body[R](resp)
	if err != nil {
		return nil, err
	}

	return &data, nil
}

// JSON decodes the response body as the domain's JSON shape. A parse
// failure surfaces as a typed decode error, never a zero value.
func JSON[T any](resp *transport.Response) (T, error) {
	var value T

	err := json.Unmarshal(resp.Body, &value)
	if err != nil {
		return value, &zosmf.DecodeError{Representation: "json", Err: err}
	}

	return value, nil
}
