package jobs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

// modifyVersion selects the synchronous flavor of the job modify
// protocol, so feedback reflects the completed action.
const modifyVersion = "2.0"

var (
	actionEndpoint = endpoint.MustNew(http.MethodPut, "/zosmf/restjobs/jobs/{subsystem}{identifier}",
		"subsystem", "identifier",
	)
	purgeEndpoint = endpoint.MustNew(http.MethodDelete, "/zosmf/restjobs/jobs/{subsystem}{identifier}",
		"subsystem", "identifier",
	)
)

type actionRequest struct {
	Request string `json:"request,omitempty"`
	Class   string `json:"class,omitempty"`
	Version string `json:"version"`
}

type actionState struct {
	tx *transport.Client

	identifier Identifier
	subsystem  string
	request    string
	class      string
}

func (s actionState) pathFields() []endpoint.Field {
	return []endpoint.Field{
		endpoint.PathField("subsystem", s.subsystem),
		endpoint.PathField("identifier", s.identifier.String()),
	}
}

// ActionBuilder accumulates the parameters of a job lifecycle action:
// cancel, hold, release, or a class change.
type ActionBuilder struct {
	state actionState
}

// Subsystem targets the action at a secondary JES subsystem.
func (b ActionBuilder) Subsystem(name string) ActionBuilder {
	b.state.subsystem = "-" + name + "/"

	return b
}

// Run executes the action.
func (b ActionBuilder) Run(ctx context.Context) (*Feedback, error) {
	req, err := actionEndpoint.Assemble(b.state.pathFields())
	if err != nil {
		return nil, fmt.Errorf("assembling job action: %w", err)
	}

	body := actionRequest{Request: b.state.request, Class: b.state.class, Version: modifyVersion}
	if err := req.SetJSONBody(body); err != nil {
		return nil, fmt.Errorf("encoding job action: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("modifying job %s: %w", b.state.identifier, err)
	}

	feedback, err := endpoint.JSON[Feedback](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding job feedback: %w", err)
	}

	return &feedback, nil
}

// PurgeBuilder accumulates the parameters of a cancel and purge.
type PurgeBuilder struct {
	state actionState
}

// Subsystem targets the purge at a secondary JES subsystem.
func (b PurgeBuilder) Subsystem(name string) PurgeBuilder {
	b.state.subsystem = "-" + name + "/"

	return b
}

// Run executes the purge.
func (b PurgeBuilder) Run(ctx context.Context) (*Feedback, error) {
	fields := append(b.state.pathFields(),
		endpoint.HeaderValue("modify_version", "X-IBM-Job-Modify-Version", modifyVersion),
	)

	req, err := purgeEndpoint.Assemble(fields)
	if err != nil {
		return nil, fmt.Errorf("assembling job purge: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("purging job %s: %w", b.state.identifier, err)
	}

	feedback, err := endpoint.JSON[Feedback](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding job feedback: %w", err)
	}

	return &feedback, nil
}
