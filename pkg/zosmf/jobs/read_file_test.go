package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ReadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/zosmf/restjobs/jobs/TESTJOB1/JOB00023/files/2/records", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		w.Write([]byte("J E S 2  J O B  L O G\n"))
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).ReadFile(NameID("TESTJOB1", "JOB00023"), 2).
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "J E S 2  J O B  L O G\n", content.Data)
}

func TestClient_ReadFileBinaryWithRange(t *testing.T) {
	raw := []byte{0x01, 0x02, 0xff}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mode=binary", r.URL.RawQuery)
		assert.Equal(t, "0-249", r.Header.Get("X-IBM-Record-Range"))

		w.Write(raw)
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).ReadFile(NameID("TESTJOB1", "JOB00023"), 2).
		Binary().
		RecordRange("0-249").
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, raw, content.Data)
}

func TestClient_ReadFileSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "search=IEF142I&insensitive=false&maxreturnsize=5", r.URL.RawQuery)

		w.Write([]byte("IEF142I TESTJOB1 STEP1 - STEP WAS EXECUTED\n"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ReadFile(NameID("TESTJOB1", "JOB00023"), 4).
		Search("IEF142I").
		SearchCaseSensitive().
		SearchMaxReturn(5).
		Run(context.Background())
	require.NoError(t, err)
}

func TestClient_ReadJCL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zosmf/restjobs/jobs/TESTJOB1/JOB00023/files/JCL/records", r.URL.Path)

		w.Write([]byte("//TESTJOB1 JOB (ACCT),'RUN'\n//STEP1 EXEC PGM=IEFBR14\n"))
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).ReadJCL(NameID("TESTJOB1", "JOB00023")).
		Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, content.Data, "PGM=IEFBR14")
}
