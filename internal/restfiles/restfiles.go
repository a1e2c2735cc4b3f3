// Package restfiles holds the wire conventions shared by the dataset and
// file endpoints of the z/OSMF restfiles API: the composite data-type
// header, the search query family, qualifier syntax for optional path
// segments, and the common list response envelope.
package restfiles

import (
	"strconv"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

// HeaderDataType is the vendor header selecting the transfer representation.
const HeaderDataType = "X-IBM-Data-Type"

// VolumeQualifier wraps a volume serial in the up-level qualifier syntax
// the restfiles path grammar requires: "ZMF046" becomes "-(ZMF046)/". The
// trailing slash belongs to the stored value because path placeholders are
// substituted with no implicit delimiters.
func VolumeQualifier(volume string) string {
	return "-(" + volume + ")/"
}

// MemberQualifier wraps a PDS member name in its path syntax: "MEMBER01"
// becomes "(MEMBER01)".
func MemberQualifier(member string) string {
	return "(" + member + ")"
}

// DataTypeField renders the read-side X-IBM-Data-Type header. The data type
// and encoding combine as "value;fileEncoding=charset"; an encoding alone
// implies text. Nothing is emitted when neither is set.
func DataTypeField(dataType zosmf.DataType, encoding string) endpoint.Field {
	return endpoint.MutatorField("data_type", func(req *transport.Request) {
		switch {
		case dataType != "" && encoding != "":
			req.SetHeader(HeaderDataType, string(dataType)+";fileEncoding="+encoding)
		case dataType != "":
			req.SetHeader(HeaderDataType, string(dataType))
		case encoding != "":
			req.SetHeader(HeaderDataType, "text;fileEncoding="+encoding)
		}
	})
}

// WriteDataTypeField renders the write-side data-type header and attaches
// the content body. Text writes always carry an explicit header (with
// optional encoding and crlf parts); binary and record writes carry the
// bare data type. The body is attached after the header so it can never
// clobber it.
func WriteDataTypeField(dataType zosmf.DataType, encoding string, crlf bool, data []byte) endpoint.Field {
	return endpoint.MutatorField("data", func(req *transport.Request) {
		if dataType == "" || dataType == zosmf.DataTypeText {
			value := "text"
			if encoding != "" {
				value += ";fileEncoding=" + encoding
			}

			if crlf {
				value += ";crlf=true"
			}

			req.SetHeader(HeaderDataType, value)
		} else {
			req.SetHeader(HeaderDataType, string(dataType))
		}

		req.Body = data
	})
}

// SearchFields declares the content-search query family. Field order fixes
// wire order: search (or research for regex), then the case-sensitivity
// flag as its own insensitive=false pair, then the result cap.
func SearchFields(search, regexSearch string, caseSensitive bool, maxReturn *int) []endpoint.Field {
	maxValue := ""
	if maxReturn != nil {
		maxValue = strconv.Itoa(*maxReturn)
	}

	return []endpoint.Field{
		endpoint.QueryValue("search", "search", search),
		endpoint.QueryValue("regex_search", "research", regexSearch),
		endpoint.QueryField("search_case_sensitive", "insensitive", "false", caseSensitive),
		endpoint.QueryField("search_max_return", "maxreturnsize", maxValue, maxReturn != nil),
	}
}

// AttributesField renders the X-IBM-Attributes header from the selected
// attribute shape and the include-total flag. With no shape selected the
// header is only emitted when a total row count was requested, using the
// protocol's default shape.
func AttributesField(attributes, defaultAttributes string, includeTotal bool) endpoint.Field {
	return endpoint.MutatorField("attributes", func(req *transport.Request) {
		switch {
		case attributes == "" && !includeTotal:
		case attributes == "":
			req.SetHeader("X-IBM-Attributes", defaultAttributes+",total")
		case includeTotal:
			req.SetHeader("X-IBM-Attributes", attributes+",total")
		default:
			req.SetHeader("X-IBM-Attributes", attributes)
		}
	})
}

// ListJSON is the response envelope every restfiles list operation shares.
type ListJSON[T any] struct {
	Items        []T   `json:"items"`
	ReturnedRows int   `json:"returnedRows"`
	MoreRows     *bool `json:"moreRows,omitempty"`
	TotalRows    *int  `json:"totalRows,omitempty"`
	JSONVersion  int   `json:"JSONversion"`
}
