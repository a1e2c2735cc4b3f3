package restfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

func headerValue(req *transport.Request, key string) string {
	for _, param := range req.Header {
		if param.Key == key {
			return param.Value
		}
	}

	return ""
}

func TestQualifiers(t *testing.T) {
	assert.Equal(t, "-(ZMF046)/", VolumeQualifier("ZMF046"))
	assert.Equal(t, "(MEMBER01)", MemberQualifier("MEMBER01"))
}

func TestDataTypeField(t *testing.T) {
	tests := []struct {
		name     string
		dataType zosmf.DataType
		encoding string
		want     string
	}{
		{name: "unset", want: ""},
		{name: "type only", dataType: zosmf.DataTypeBinary, want: "binary"},
		{name: "type and encoding", dataType: zosmf.DataTypeText, encoding: "IBM-1047", want: "text;fileEncoding=IBM-1047"},
		{name: "encoding implies text", encoding: "IBM-1047", want: "text;fileEncoding=IBM-1047"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &transport.Request{}
			DataTypeField(tt.dataType, tt.encoding).Mutate(req)

			assert.Equal(t, tt.want, headerValue(req, "X-IBM-Data-Type"))
		})
	}
}

func TestWriteDataTypeField(t *testing.T) {
	tests := []struct {
		name     string
		dataType zosmf.DataType
		encoding string
		crlf     bool
		want     string
	}{
		{name: "default is text", want: "text"},
		{name: "text with encoding", dataType: zosmf.DataTypeText, encoding: "IBM-1047", want: "text;fileEncoding=IBM-1047"},
		{name: "text with crlf", dataType: zosmf.DataTypeText, crlf: true, want: "text;crlf=true"},
		{name: "encoding and crlf", encoding: "IBM-1047", crlf: true, want: "text;fileEncoding=IBM-1047;crlf=true"},
		{name: "binary ignores text parts", dataType: zosmf.DataTypeBinary, crlf: true, want: "binary"},
		{name: "record", dataType: zosmf.DataTypeRecord, want: "record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &transport.Request{}
			WriteDataTypeField(tt.dataType, tt.encoding, tt.crlf, []byte("payload")).Mutate(req)

			assert.Equal(t, tt.want, headerValue(req, "X-IBM-Data-Type"))
			assert.Equal(t, []byte("payload"), req.Body)
		})
	}
}

func TestAttributesField(t *testing.T) {
	tests := []struct {
		name         string
		attributes   string
		includeTotal bool
		want         string
	}{
		{name: "unset", want: ""},
		{name: "shape only", attributes: "base", want: "base"},
		{name: "shape with total", attributes: "member", includeTotal: true, want: "member,total"},
		{name: "total alone uses default shape", includeTotal: true, want: "dsname,total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &transport.Request{}
			AttributesField(tt.attributes, "dsname", tt.includeTotal).Mutate(req)

			assert.Equal(t, tt.want, headerValue(req, "X-IBM-Attributes"))
		})
	}
}

func TestSearchFields(t *testing.T) {
	limit := 10

	fields := SearchFields("something", "", true, &limit)

	req := &transport.Request{}
	for _, field := range fields {
		if value, ok := field.Value(); ok {
			req.AddQuery(field.Key, value)
		}
	}

	assert.Equal(t, "search=something&insensitive=false&maxreturnsize=10", req.EncodeQuery())
}
