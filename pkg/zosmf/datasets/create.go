package datasets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var createEndpoint = endpoint.MustNew(http.MethodPost, "/zosmf/restfiles/ds/{dataset}",
	"dataset",
)

// CreateAttributes describes the allocation of a new data set. Zero
// valued fields are omitted so the server applies its defaults.
type CreateAttributes struct {
	Volume           string `json:"volser,omitempty"`
	DeviceType       string `json:"unit,omitempty"`
	Organization     string `json:"dsorg,omitempty"`
	AllocationUnit   string `json:"alcunit,omitempty"`
	PrimarySpace     int    `json:"primary,omitempty"`
	SecondarySpace   int    `json:"secondary,omitempty"`
	DirectoryBlocks  int    `json:"dirblk,omitempty"`
	AverageBlockSize int    `json:"avgblk,omitempty"`
	RecordFormat     string `json:"recfm,omitempty"`
	BlockSize        int    `json:"blksize,omitempty"`
	RecordLength     int    `json:"lrecl,omitempty"`
	StorageClass     string `json:"storclass,omitempty"`
	ManagementClass  string `json:"mgntclass,omitempty"`
	DataClass        string `json:"dataclass,omitempty"`
	Type             string `json:"dsntype,omitempty"`
	Model            string `json:"like,omitempty"`
}

// Create is the outcome of a data set allocation.
type Create struct {
	TransactionID string
}

type createState struct {
	tx *transport.Client

	dataset    string
	attributes CreateAttributes
}

// CreateBuilder accumulates the allocation parameters of a new data set.
type CreateBuilder struct {
	state createState
}

// Attributes sets the full allocation attribute block at once.
func (b CreateBuilder) Attributes(attrs CreateAttributes) CreateBuilder {
	b.state.attributes = attrs

	return b
}

// Run executes the allocation.
func (b CreateBuilder) Run(ctx context.Context) (*Create, error) {
	req, err := createEndpoint.Assemble([]endpoint.Field{
		endpoint.PathField("dataset", b.state.dataset),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling dataset create: %w", err)
	}

	if err := req.SetJSONBody(b.state.attributes); err != nil {
		return nil, fmt.Errorf("encoding dataset attributes: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating dataset %s: %w", b.state.dataset, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("creating dataset %s: %w", b.state.dataset, err)
	}

	return &Create{TransactionID: meta.TransactionID}, nil
}
