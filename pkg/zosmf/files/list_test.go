package files

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
		assert.Equal(t, "/zosmf/restfiles/fs", r.URL.Path)
		assert.Equal(t, "path=%2Fusr%2Finclude&name=%2A.h&type=f&depth=1&limit=100", r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("X-IBM-Lstat"))

		w.Header().Set("X-IBM-Txid", "tx-90")
		w.Write([]byte(`{
			"items": [
				{"name": "stdio.h", "mode": "-rwxr-xr-x", "size": 22742, "uid": 0, "user": "OMVSKERN", "mtime": "2024-01-08T11:21:02"}
			],
			"returnedRows": 1,
			"JSONversion": 1
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).List("/usr/include").
		Name("*.h").
		Type(FileTypeRegular).
		Depth(1).
		Limit(100).
		Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "stdio.h", result.Items[0].Name)
	assert.Equal(t, int64(22742), result.Items[0].Size)
	assert.Equal(t, 1, result.ReturnedRows)
	assert.Equal(t, "tx-90", result.TransactionID)
}

func TestClient_ListStatSymlinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.Header.Get("X-IBM-Lstat"))
		assert.Equal(t, "path=%2Ftmp&filesys=same&symlinks=report", r.URL.RawQuery)

		w.Header().Set("X-IBM-Txid", "tx-91")
		w.Write([]byte(`{"items": [], "returnedRows": 0, "JSONversion": 1}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).List("/tmp").
		FileSystem(ScopeSame).
		Symlinks(SymlinksReport).
		StatSymlinks().
		Run(context.Background())
	require.NoError(t, err)
}

func TestClient_ListSizeFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "path=%2Fvar&mtime=-7&size=%2B1048576", r.URL.RawQuery)

		w.Header().Set("X-IBM-Txid", "tx-92")
		w.Write([]byte(`{"items": [], "returnedRows": 0, "JSONversion": 1}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).List("/var").
		ModifiedDays(LessThan("7")).
		Size(GreaterThan("1048576")).
		Run(context.Background())
	require.NoError(t, err)
}
