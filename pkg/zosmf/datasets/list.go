package datasets

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/restfiles"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var listEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restfiles/ds")

// DatasetName is the narrow catalog listing item carrying the name only.
type DatasetName struct {
	Name string `json:"dsname"`
}

// Dataset is the wide catalog listing item carrying the full attribute
// set. Most attributes are absent for migrated data sets, hence the
// pointer fields.
type Dataset struct {
	Name           string  `json:"dsname"`
	BlockSize      *string `json:"blksz,omitempty"`
	CatalogName    *string `json:"catnm,omitempty"`
	CreationDate   *string `json:"cdate,omitempty"`
	DeviceType     *string `json:"dev,omitempty"`
	Organization   *string `json:"dsorg,omitempty"`
	Type           *string `json:"dsntp,omitempty"`
	ExpirationDate *string `json:"edate,omitempty"`
	ExtentsUsed    *string `json:"extx,omitempty"`
	RecordLength   *string `json:"lrecl,omitempty"`
	Migrated       *string `json:"migr,omitempty"`
	MultiVolume    *string `json:"mvol,omitempty"`
	Overflow       *string `json:"ovf,omitempty"`
	ReferenceDate  *string `json:"rdate,omitempty"`
	RecordFormat   *string `json:"recfm,omitempty"`
	Size           *string `json:"sizex,omitempty"`
	SpaceUnits     *string `json:"spacu,omitempty"`
	PercentUsed    *string `json:"used,omitempty"`
	Volume         *string `json:"vol,omitempty"`
	VolumeList     *string `json:"vols,omitempty"`
}

// ListItem constrains the shapes a catalog listing can decode to.
type ListItem interface {
	DatasetName | Dataset
}

// List is a catalog listing.
type List[T ListItem] struct {
	Items         []T
	ReturnedRows  int
	MoreRows      *bool
	TotalRows     *int
	JSONVersion   int
	TransactionID string
}

type listState struct {
	tx *transport.Client

	level        string
	volume       string
	start        string
	maxItems     *int
	attributes   string
	includeTotal bool
}

func (s listState) fields() []endpoint.Field {
	maxValue := ""
	if s.maxItems != nil {
		maxValue = strconv.Itoa(*s.maxItems)
	}

	return []endpoint.Field{
		endpoint.QueryValue("level", "dslevel", s.level),
		endpoint.QueryValue("volume", "volser", s.volume),
		endpoint.QueryValue("start", "start", s.start),
		endpoint.HeaderField("max_items", "X-IBM-Max-Items", maxValue, s.maxItems != nil),
		restfiles.AttributesField(s.attributes, "dsname", s.includeTotal),
	}
}

// ListBuilder accumulates the parameters of a catalog search. The type
// parameter tracks the item shape the response decodes to; Attributes
// widens it from names to the full attribute set.
type ListBuilder[T ListItem] struct {
	state listState
}

// Volume restricts the search to data sets on the given volume serial.
func (b ListBuilder[T]) Volume(volume string) ListBuilder[T] {
	b.state.volume = volume

	return b
}

// Start resumes the listing at the given data set name.
func (b ListBuilder[T]) Start(name string) ListBuilder[T] {
	b.state.start = name

	return b
}

// MaxItems caps the number of entries returned.
func (b ListBuilder[T]) MaxItems(limit int) ListBuilder[T] {
	b.state.maxItems = &limit

	return b
}

// IncludeTotal asks the server to report the total row count alongside
// the returned page.
func (b ListBuilder[T]) IncludeTotal() ListBuilder[T] {
	b.state.includeTotal = true

	return b
}

// Attributes widens the item shape to the full attribute set.
func (b ListBuilder[T]) Attributes() ListBuilder[Dataset] {
	b.state.attributes = "base"

	return ListBuilder[Dataset]{state: b.state}
}

// Run executes the catalog search.
func (b ListBuilder[T]) Run(ctx context.Context) (*List[T], error) {
	req, err := listEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling dataset list: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing datasets matching %s: %w", b.state.level, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("listing datasets matching %s: %w", b.state.level, err)
	}

	body, err := endpoint.JSON[restfiles.ListJSON[T]](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset list: %w", err)
	}

	return &List[T]{
		Items:         body.Items,
		ReturnedRows:  body.ReturnedRows,
		MoreRows:      body.MoreRows,
		TotalRows:     body.TotalRows,
		JSONVersion:   body.JSONVersion,
		TransactionID: meta.TransactionID,
	}, nil
}
