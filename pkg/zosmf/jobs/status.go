package jobs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var statusEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restjobs/jobs/{subsystem}{identifier}",
	"subsystem", "identifier",
)

// StatusBuilder accumulates the parameters of a job status query. The
// type parameter tracks the item shape; ExecData widens it with
// execution timestamps.
type StatusBuilder[T ListItem] struct {
	state statusState
}

type statusState struct {
	tx *transport.Client

	identifier Identifier
	subsystem  string
	execData   bool
	stepData   bool
}

func (s statusState) fields() []endpoint.Field {
	return []endpoint.Field{
		endpoint.PathField("subsystem", s.subsystem),
		endpoint.PathField("identifier", s.identifier.String()),
		endpoint.QueryField("exec_data", "exec-data", "Y", s.execData),
		endpoint.QueryField("step_data", "step-data", "Y", s.stepData),
	}
}

// Subsystem targets the query at a secondary JES subsystem.
func (b StatusBuilder[T]) Subsystem(name string) StatusBuilder[T] {
	b.state.subsystem = "-" + name + "/"

	return b
}

// StepData includes per step execution data in the response.
func (b StatusBuilder[T]) StepData() StatusBuilder[T] {
	b.state.stepData = true

	return b
}

// ExecData widens the item shape with execution timestamps.
func (b StatusBuilder[T]) ExecData() StatusBuilder[ExecJob] {
	b.state.execData = true

	return StatusBuilder[ExecJob]{state: b.state}
}

// Run executes the status query.
func (b StatusBuilder[T]) Run(ctx context.Context) (*T, error) {
	req, err := statusEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling job status: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("querying status of job %s: %w", b.state.identifier, err)
	}

	job, err := endpoint.JSON[T](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding job status: %w", err)
	}

	return &job, nil
}
