package transport

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Param is one ordered key/value pair. Query and header parameters are kept
// as slices rather than maps so that assembly order is preserved
// byte-for-byte on the wire.
type Param struct {
	Key   string
	Value string
}

// Request is a fully-formed description of one HTTP request. It is produced
// by the endpoint assembly engine as a pure value, which makes
// request-equality tests against hand-built references possible, and is
// consumed exactly once by Client.Do.
type Request struct {
	Method string
	Path   string
	Query  []Param
	Header []Param
	Body   []byte

	// AllowNotModified marks a conditional request: a 304 response is a
	// success carrying no body, not a transport failure. Only conditional
	// builders set this.
	AllowNotModified bool

	basicAuthUser string
	basicAuthPass string
	hasBasicAuth  bool
}

// AddQuery appends one query pair, preserving insertion order.
func (r *Request) AddQuery(key, value string) {
	r.Query = append(r.Query, Param{Key: key, Value: value})
}

// SetHeader appends one header pair. Pairs are applied in order by Do, so a
// later pair for the same key wins.
func (r *Request) SetHeader(key, value string) {
	r.Header = append(r.Header, Param{Key: key, Value: value})
}

// SetBasicAuth attaches basic-auth credentials to the request.
func (r *Request) SetBasicAuth(username, password string) {
	r.basicAuthUser = username
	r.basicAuthPass = password
	r.hasBasicAuth = true
}

// SetJSONBody marshals v as the request body and sets the Content-Type
// header. The body is attached after all classification-driven headers, so
// a data-type header set earlier is never overwritten.
func (r *Request) SetJSONBody(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}

	r.Body = data
	r.SetHeader("Content-Type", "application/json")

	return nil
}

// EncodeQuery renders the ordered query pairs as a raw query string.
func (r *Request) EncodeQuery() string {
	if len(r.Query) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, param := range r.Query {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.Value))
	}

	return builder.String()
}
