package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

func response(status int, header http.Header, body []byte) *transport.Response {
	if header == nil {
		header = http.Header{}
	}

	return &transport.Response{StatusCode: status, Header: header, Body: body}
}

func TestMetadata(t *testing.T) {
	header := http.Header{}
	header.Set("X-IBM-Txid", "tx-0001")
	header.Set("Etag", "6B3EAD4A")
	header.Set("X-IBM-Session-Ref", "sess-42")

	meta, err := Metadata(response(http.StatusOK, header, nil))
	require.NoError(t, err)

	assert.Equal(t, "tx-0001", meta.TransactionID)
	assert.Equal(t, "6B3EAD4A", meta.Etag)
	assert.Equal(t, "sess-42", meta.SessionRef)
}

func TestMetadata_MissingTransactionID(t *testing.T) {
	_, err := Metadata(response(http.StatusOK, nil, nil))

	var headerErr *zosmf.HeaderError
	require.ErrorAs(t, err, &headerErr)
	assert.Equal(t, "X-IBM-Txid", headerErr.Header)
	assert.ErrorIs(t, err, zosmf.ErrMissingHeader)
}

func TestMeta_RequireEtag(t *testing.T) {
	etag, err := Meta{Etag: "6B3EAD4A"}.RequireEtag()
	require.NoError(t, err)
	assert.Equal(t, "6B3EAD4A", etag)

	_, err = Meta{}.RequireEtag()

	var headerErr *zosmf.HeaderError
	require.ErrorAs(t, err, &headerErr)
	assert.Equal(t, "Etag", headerErr.Header)
}

func TestBody_Text(t *testing.T) {
	data, err := Body[string](response(http.StatusOK, nil, []byte("//JOB1 JOB\n")))
	require.NoError(t, err)
	assert.Equal(t, "//JOB1 JOB\n", data)
}

func TestBody_TextRejectsInvalidUTF8(t *testing.T) {
	_, err := Body[string](response(http.StatusOK, nil, []byte{0xff, 0xfe}))

	var decodeErr *zosmf.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "text", decodeErr.Representation)
}

func TestBody_DefinedStringTypeRejectsInvalidUTF8(t *testing.T) {
	type jcl string

	_, err := Body[jcl](response(http.StatusOK, nil, []byte{0xff, 0xfe}))

	var decodeErr *zosmf.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "text", decodeErr.Representation)
	assert.ErrorIs(t, err, zosmf.ErrInvalidUTF8)
}

func TestBody_DefinedByteSliceTypeSkipsTextValidation(t *testing.T) {
	type record []byte

	data, err := Body[record](response(http.StatusOK, nil, []byte{0xff, 0xfe}))
	require.NoError(t, err)
	assert.Equal(t, record{0xff, 0xfe}, data)
}

func TestBody_BinaryPassesBytesThrough(t *testing.T) {
	raw := []byte{0x00, 0x14, 0xff, 0xfe}

	data, err := Body[[]byte](response(http.StatusOK, nil, raw))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestBodyIfModified(t *testing.T) {
	data, err := BodyIfModified[string](response(http.StatusOK, nil, []byte("content")))
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "content", *data)
}

func TestBodyIfModified_NotModifiedYieldsNil(t *testing.T) {
	data, err := BodyIfModified[string](response(http.StatusNotModified, nil, nil))
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestJSON(t *testing.T) {
	type page struct {
		ReturnedRows int `json:"returnedRows"`
	}

	body, err := JSON[page](response(http.StatusOK, nil, []byte(`{"returnedRows":3}`)))
	require.NoError(t, err)
	assert.Equal(t, 3, body.ReturnedRows)
}

func TestJSON_DecodeFailureIsTyped(t *testing.T) {
	_, err := JSON[map[string]string](response(http.StatusOK, nil, []byte("not json")))

	var decodeErr *zosmf.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "json", decodeErr.Representation)
}
