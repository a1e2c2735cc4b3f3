package files

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var deleteEndpoint = endpoint.MustNew(http.MethodDelete, "/zosmf/restfiles/fs{path}",
	"path",
)

// Delete is the outcome of a file deletion.
type Delete struct {
	TransactionID string
}

type deleteState struct {
	tx *transport.Client

	path      string
	recursive bool
}

// DeleteBuilder accumulates the parameters of a file deletion.
type DeleteBuilder struct {
	state deleteState
}

// Recursive removes a directory together with its contents.
func (b DeleteBuilder) Recursive() DeleteBuilder {
	b.state.recursive = true

	return b
}

// Run executes the deletion.
func (b DeleteBuilder) Run(ctx context.Context) (*Delete, error) {
	req, err := deleteEndpoint.Assemble([]endpoint.Field{
		endpoint.PathField("path", b.state.path),
		endpoint.HeaderField("recursive", "X-IBM-Option", "recursive", b.state.recursive),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling file delete: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deleting file %s: %w", b.state.path, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("deleting file %s: %w", b.state.path, err)
	}

	return &Delete{TransactionID: meta.TransactionID}, nil
}
