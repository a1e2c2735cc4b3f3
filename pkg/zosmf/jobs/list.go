package jobs

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var listEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restjobs/jobs")

// ListItem constrains the shapes a job listing can decode to.
type ListItem interface {
	Job | ExecJob
}

// ListBuilder accumulates the filters of a job listing. The type
// parameter tracks the item shape; ExecData widens it with execution
// timestamps.
type ListBuilder[T ListItem] struct {
	state listState
}

type listState struct {
	tx *transport.Client

	owner      string
	prefix     string
	maxJobs    *int
	jobID      string
	correlator string
	execData   bool
	activeOnly bool
}

func (s listState) fields() []endpoint.Field {
	maxValue := ""
	if s.maxJobs != nil {
		maxValue = strconv.Itoa(*s.maxJobs)
	}

	return []endpoint.Field{
		endpoint.QueryValue("owner", "owner", s.owner),
		endpoint.QueryValue("prefix", "prefix", s.prefix),
		endpoint.QueryField("max_jobs", "max-jobs", maxValue, s.maxJobs != nil),
		endpoint.QueryValue("job_id", "jobid", s.jobID),
		endpoint.QueryValue("user_correlator", "user-correlator", s.correlator),
		endpoint.QueryField("exec_data", "exec-data", "Y", s.execData),
		endpoint.QueryField("status", "status", "active", s.activeOnly),
	}
}

// Owner keeps only jobs owned by the given user. The server defaults to
// the authenticated user; "*" lists all owners.
func (b ListBuilder[T]) Owner(owner string) ListBuilder[T] {
	b.state.owner = owner

	return b
}

// Prefix keeps only jobs whose names match the given prefix pattern.
func (b ListBuilder[T]) Prefix(prefix string) ListBuilder[T] {
	b.state.prefix = prefix

	return b
}

// MaxJobs caps the number of jobs returned.
func (b ListBuilder[T]) MaxJobs(limit int) ListBuilder[T] {
	b.state.maxJobs = &limit

	return b
}

// JobID keeps only the job with the given jobid.
func (b ListBuilder[T]) JobID(id string) ListBuilder[T] {
	b.state.jobID = id

	return b
}

// UserCorrelator keeps only jobs submitted with the given correlator.
func (b ListBuilder[T]) UserCorrelator(correlator string) ListBuilder[T] {
	b.state.correlator = correlator

	return b
}

// ActiveOnly keeps only jobs currently executing.
func (b ListBuilder[T]) ActiveOnly() ListBuilder[T] {
	b.state.activeOnly = true

	return b
}

// ExecData widens the item shape with execution timestamps.
func (b ListBuilder[T]) ExecData() ListBuilder[ExecJob] {
	b.state.execData = true

	return ListBuilder[ExecJob]{state: b.state}
}

// Run executes the listing.
func (b ListBuilder[T]) Run(ctx context.Context) ([]T, error) {
	req, err := listEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling job list: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	items, err := endpoint.JSON[[]T](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding job list: %w", err)
	}

	return items, nil
}
