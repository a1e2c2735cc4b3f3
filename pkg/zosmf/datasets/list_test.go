package datasets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/zosmf/restfiles/ds", r.URL.Path)
		assert.Equal(t, "dslevel=JIAHJ.REST.%2A&start=JIAHJ.REST.A", r.URL.RawQuery)
		assert.Equal(t, "50", r.Header.Get("X-IBM-Max-Items"))
		assert.Empty(t, r.Header.Get("X-IBM-Attributes"))

		w.Header().Set("X-IBM-Txid", "tx-20")
		w.Write([]byte(`{
			"items": [{"dsname": "JIAHJ.REST.TEST.PDS"}, {"dsname": "JIAHJ.REST.TEST.VB"}],
			"returnedRows": 2,
			"moreRows": false,
			"JSONversion": 1
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).List("JIAHJ.REST.*").
		Start("JIAHJ.REST.A").
		MaxItems(50).
		Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "JIAHJ.REST.TEST.PDS", result.Items[0].Name)
	assert.Equal(t, 2, result.ReturnedRows)
	require.NotNil(t, result.MoreRows)
	assert.False(t, *result.MoreRows)
	assert.Equal(t, "tx-20", result.TransactionID)
}

func TestClient_ListAttributes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "base,total", r.Header.Get("X-IBM-Attributes"))

		w.Header().Set("X-IBM-Txid", "tx-21")
		w.Write([]byte(`{
			"items": [{"dsname": "JIAHJ.REST.TEST.PDS", "dsorg": "PO", "recfm": "FB", "vol": "ZMF046"}],
			"returnedRows": 1,
			"totalRows": 1,
			"JSONversion": 1
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).List("JIAHJ.REST.*").
		Attributes().
		IncludeTotal().
		Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	require.NotNil(t, result.Items[0].Organization)
	assert.Equal(t, "PO", *result.Items[0].Organization)
	require.NotNil(t, result.TotalRows)
	assert.Equal(t, 1, *result.TotalRows)
}

func TestClient_Members(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zosmf/restfiles/ds/JIAHJ.REST.TEST.PDS/member", r.URL.Path)
		assert.Equal(t, "pattern=MEM%2A", r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("X-IBM-Attributes"))

		w.Header().Set("X-IBM-Txid", "tx-22")
		w.Write([]byte(`{
			"items": [{"member": "MEMBER01"}, {"member": "MEMBER02"}],
			"returnedRows": 2,
			"JSONversion": 1
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Members("JIAHJ.REST.TEST.PDS").
		Pattern("MEM*").
		Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "MEMBER01", result.Items[0].Name)
}

func TestClient_MembersAttributes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "base", r.Header.Get("X-IBM-Attributes"))

		w.Header().Set("X-IBM-Txid", "tx-23")
		w.Write([]byte(`{
			"items": [{"member": "MEMBER01", "vers": 3, "mod": 1, "user": "JIAHJ"}],
			"returnedRows": 1,
			"JSONversion": 1
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Members("JIAHJ.REST.TEST.PDS").
		Attributes().
		Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	require.NotNil(t, result.Items[0].Version)
	assert.Equal(t, 3, *result.Items[0].Version)
}
