package datasets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var actionEndpoint = endpoint.MustNew(http.MethodPut, "/zosmf/restfiles/ds/{dataset}",
	"dataset",
)

// Migration is the outcome of a migrate or recall request.
type Migration struct {
	TransactionID string
}

type migrationRequest struct {
	Request string `json:"request"`
	Wait    bool   `json:"wait,omitempty"`
}

type actionState struct {
	tx *transport.Client

	dataset string
	wait    bool
}

func (s actionState) run(ctx context.Context, action string) (*Migration, error) {
	req, err := actionEndpoint.Assemble([]endpoint.Field{
		endpoint.PathField("dataset", s.dataset),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling dataset %s: %w", action, err)
	}

	if err := req.SetJSONBody(migrationRequest{Request: action, Wait: s.wait}); err != nil {
		return nil, fmt.Errorf("encoding dataset %s request: %w", action, err)
	}

	resp, err := s.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s of dataset %s: %w", action, s.dataset, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("requesting %s of dataset %s: %w", action, s.dataset, err)
	}

	return &Migration{TransactionID: meta.TransactionID}, nil
}

// MigrateBuilder accumulates the parameters of a migration request.
type MigrateBuilder struct {
	state actionState
}

// Wait blocks the request until the migration completes instead of
// queueing it.
func (b MigrateBuilder) Wait() MigrateBuilder {
	b.state.wait = true

	return b
}

// Run executes the migration request.
func (b MigrateBuilder) Run(ctx context.Context) (*Migration, error) {
	return b.state.run(ctx, "hmigrate")
}

// RecallBuilder accumulates the parameters of a recall request.
type RecallBuilder struct {
	state actionState
}

// Wait blocks the request until the recall completes instead of queueing
// it.
func (b RecallBuilder) Wait() RecallBuilder {
	b.state.wait = true

	return b
}

// Run executes the recall request.
func (b RecallBuilder) Run(ctx context.Context) (*Migration, error) {
	return b.state.run(ctx, "hrecall")
}
