package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zosmf-community/zosmf-go/internal/transport"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		pathFields []string
		wantErr    error
	}{
		{
			name:       "placeholder without field",
			template:   "/ds/{dataset}",
			pathFields: nil,
			wantErr:    ErrUnboundPlaceholder,
		},
		{
			name:       "field without placeholder",
			template:   "/ds/{dataset}",
			pathFields: []string{"dataset", "member"},
			wantErr:    ErrUnusedPathField,
		},
		{
			name:       "field declared twice",
			template:   "/ds/{dataset}",
			pathFields: []string{"dataset", "dataset"},
			wantErr:    ErrDuplicatePathField,
		},
		{
			name:       "placeholder appears twice",
			template:   "/ds/{dataset}/{dataset}",
			pathFields: []string{"dataset"},
			wantErr:    ErrDuplicatePlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(http.MethodGet, tt.template, tt.pathFields...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMustNew_PanicsOnInvalidTemplate(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(http.MethodGet, "/ds/{dataset}")
	})
}

func TestAssemble_QueryOrderFollowsDeclarationOrder(t *testing.T) {
	descriptor := MustNew(http.MethodGet, "/zosmf/restfiles/fs{path}", "path")

	req, err := descriptor.Assemble([]Field{
		PathField("path", "/etc/inetd.conf"),
		QueryValue("search", "search", "something"),
		QueryField("insensitive", "insensitive", "false", true),
		QueryField("max", "maxreturnsize", "10", true),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/zosmf/restfiles/fs/etc/inetd.conf", req.Path)
	assert.Equal(t, "search=something&insensitive=false&maxreturnsize=10", req.EncodeQuery())
}

func TestAssemble_UnsetFieldsAreNeverEmitted(t *testing.T) {
	descriptor := MustNew(http.MethodGet, "/zosmf/restfiles/ds")

	req, err := descriptor.Assemble([]Field{
		QueryValue("level", "dslevel", ""),
		QueryField("start", "start", "", false),
		HeaderValue("etag", "If-None-Match", ""),
		HeaderField("max", "X-IBM-Max-Items", "", false),
		FlagHeader("lstat", "X-IBM-Lstat", false),
	})
	require.NoError(t, err)

	assert.Empty(t, req.Query)
	assert.Empty(t, req.Header)
}

func TestAssemble_RepeatableQueryPreservesOrder(t *testing.T) {
	descriptor := MustNew(http.MethodGet, "/zosmf/variables/rest/1.0/systems/{system}", "system")

	req, err := descriptor.Assemble([]Field{
		PathField("system", "local"),
		RepeatableQueryField("names", "var-name", []string{"SYSNAME", "SYSPLEX", "SYSCLONE"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "var-name=SYSNAME&var-name=SYSPLEX&var-name=SYSCLONE", req.EncodeQuery())
}

func TestAssemble_MutatorsRunAfterHeaderPass(t *testing.T) {
	descriptor := MustNew(http.MethodPut, "/zosmf/restfiles/fs{path}", "path")

	req, err := descriptor.Assemble([]Field{
		PathField("path", "/u/jiahj/out.txt"),
		MutatorField("data", func(req *transport.Request) {
			req.SetHeader("X-IBM-Data-Type", "text;crlf=true")
			req.Body = []byte("record one")
		}),
		HeaderValue("etag", "If-Match", "B5C2A7E9"),
	})
	require.NoError(t, err)

	// The mutator declared before the header field still runs last.
	assert.Equal(t, []transport.Param{
		{Key: "If-Match", Value: "B5C2A7E9"},
		{Key: "X-IBM-Data-Type", Value: "text;crlf=true"},
	}, req.Header)
	assert.Equal(t, []byte("record one"), req.Body)
}

func TestAssemble_UndeclaredPathFieldRejected(t *testing.T) {
	descriptor := MustNew(http.MethodGet, "/zosmf/restfiles/ds")

	_, err := descriptor.Assemble([]Field{
		PathField("dataset", "SYS1.PARMLIB"),
	})
	assert.ErrorIs(t, err, ErrUndeclaredPathField)
}

func TestAssemble_IsDeterministic(t *testing.T) {
	descriptor := MustNew(http.MethodGet, "/zosmf/restfiles/ds/{dataset}", "dataset")

	fields := []Field{
		PathField("dataset", "SYS1.PARMLIB"),
		QueryValue("start", "start", "IEASYS00"),
		HeaderValue("max", "X-IBM-Max-Items", "50"),
	}

	first, err := descriptor.Assemble(fields)
	require.NoError(t, err)

	second, err := descriptor.Assemble(fields)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
