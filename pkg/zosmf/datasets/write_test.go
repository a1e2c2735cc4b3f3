package datasets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

func TestClient_Write(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/zosmf/restfiles/ds/SYS1.PARMLIB(IEASYS00)", r.URL.Path)
		assert.Equal(t, "text", r.Header.Get("X-IBM-Data-Type"))
		assert.Equal(t, "5C0A11FF", r.Header.Get("If-Match"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "SYSPARM(00)\n", string(body))

		w.Header().Set("X-IBM-Txid", "tx-30")
		w.Header().Set("Etag", "77AB00CD")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Write("SYS1.PARMLIB").
		Member("IEASYS00").
		Text("SYSPARM(00)\n").
		IfMatch("5C0A11FF").
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "77AB00CD", result.Etag)
	assert.Equal(t, "tx-30", result.TransactionID)
}

func TestClient_WriteMissingEtagIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-IBM-Txid", "tx-31")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Write("SYS1.PARMLIB").
		Member("IEASYS00").
		Text("data").
		Run(context.Background())

	var headerErr *zosmf.HeaderError
	require.ErrorAs(t, err, &headerErr)
	assert.Equal(t, "Etag", headerErr.Header)
	assert.ErrorIs(t, err, zosmf.ErrMissingHeader)
}

func TestClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/zosmf/restfiles/ds/JIAHJ.REST.TEST.NEW", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var attrs map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&attrs))
		assert.Equal(t, "PO", attrs["dsorg"])
		assert.Equal(t, "FB", attrs["recfm"])
		assert.Equal(t, float64(80), attrs["lrecl"])
		assert.NotContains(t, attrs, "volser")

		w.Header().Set("X-IBM-Txid", "tx-32")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Create("JIAHJ.REST.TEST.NEW").
		Attributes(CreateAttributes{
			Organization:    "PO",
			AllocationUnit:  "TRK",
			PrimarySpace:    10,
			SecondarySpace:  5,
			DirectoryBlocks: 10,
			RecordFormat:    "FB",
			RecordLength:    80,
		}).
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tx-32", result.TransactionID)
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/zosmf/restfiles/ds/-(ZMF046)/JIAHJ.REST.TEST.OLD", r.URL.Path)

		w.Header().Set("X-IBM-Txid", "tx-33")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Delete("JIAHJ.REST.TEST.OLD").
		Volume("ZMF046").
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tx-33", result.TransactionID)
}

func TestClient_Migrate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/zosmf/restfiles/ds/JIAHJ.REST.TEST.DS", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"request":"hmigrate","wait":true}`, string(body))

		w.Header().Set("X-IBM-Txid", "tx-34")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Migrate("JIAHJ.REST.TEST.DS").
		Wait().
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tx-34", result.TransactionID)
}

func TestClient_Recall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"request":"hrecall"}`, string(body))

		w.Header().Set("X-IBM-Txid", "tx-35")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Recall("JIAHJ.REST.TEST.DS").
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tx-35", result.TransactionID)
}
