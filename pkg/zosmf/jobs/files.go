package jobs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var filesEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restjobs/jobs/{subsystem}{identifier}/files",
	"subsystem", "identifier",
)

// FilesBuilder accumulates the parameters of a spool file listing.
type FilesBuilder struct {
	state filesState
}

type filesState struct {
	tx *transport.Client

	identifier Identifier
	subsystem  string
}

// Subsystem targets the listing at a secondary JES subsystem.
func (b FilesBuilder) Subsystem(name string) FilesBuilder {
	b.state.subsystem = "-" + name + "/"

	return b
}

// Run executes the listing.
func (b FilesBuilder) Run(ctx context.Context) ([]File, error) {
	req, err := filesEndpoint.Assemble([]endpoint.Field{
		endpoint.PathField("subsystem", b.state.subsystem),
		endpoint.PathField("identifier", b.state.identifier.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling spool file list: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing spool files of job %s: %w", b.state.identifier, err)
	}

	files, err := endpoint.JSON[[]File](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding spool file list: %w", err)
	}

	return files, nil
}
