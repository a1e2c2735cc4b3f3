// Package sysvars provides typed access to the z/OSMF system variables
// REST interface: listing the variables of a sysplex member and
// importing variable definitions from a host file.
package sysvars

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var (
	listEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/variables/rest/1.0/systems/{system}",
		"system",
	)
	importEndpoint = endpoint.MustNew(http.MethodPut, "/zosmf/variables/rest/1.0/systems/{sysplex}.{system}/actions/import",
		"sysplex", "system",
	)
)

// System addresses one system of a sysplex. The zero value addresses the
// local system.
type System struct {
	sysplex string
	system  string
}

// Local addresses the system the requests are served by.
func Local() System {
	return System{}
}

// Named addresses the given system of the given sysplex.
func Named(sysplex, system string) System {
	return System{sysplex: sysplex, system: system}
}

func (s System) pathValue() string {
	if s.sysplex == "" {
		return "local"
	}

	return s.sysplex + "." + s.system
}

// Variable is one system variable.
type Variable struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

type variableList struct {
	Variables []Variable `json:"system-variable-list"`
}

type variablesImport struct {
	File string `json:"variables-import-file"`
}

// Client executes system variable operations against a single z/OSMF
// host.
type Client struct {
	tx *transport.Client
}

// NewClient wraps a transport for the system variable endpoints.
func NewClient(tx *transport.Client) *Client {
	return &Client{tx: tx}
}

// List prepares a variable listing for the given system.
func (c *Client) List(system System) ListBuilder {
	return ListBuilder{state: listState{tx: c.tx, system: system}}
}

// Import loads variable definitions for the given system from a file on
// the host, named by an absolute UNIX path or a data set name. The
// import endpoint addresses systems by sysplex and system name, so the
// system must come from Named.
func (c *Client) Import(system System, file string) ImportBuilder {
	return ImportBuilder{state: importState{tx: c.tx, system: system, file: file}}
}

type listState struct {
	tx *transport.Client

	system System
	names  []string
}

// ListBuilder accumulates the parameters of a variable listing.
type ListBuilder struct {
	state listState
}

// Names keeps only the named variables, preserving the given order on
// the wire. Without it every variable is returned.
func (b ListBuilder) Names(names ...string) ListBuilder {
	b.state.names = names

	return b
}

// Run executes the listing.
func (b ListBuilder) Run(ctx context.Context) ([]Variable, error) {
	req, err := listEndpoint.Assemble([]endpoint.Field{
		endpoint.PathField("system", b.state.system.pathValue()),
		endpoint.RepeatableQueryField("names", "var-name", b.state.names),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling variable list: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing system variables of %s: %w", b.state.system.pathValue(), err)
	}

	body, err := endpoint.JSON[variableList](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding variable list: %w", err)
	}

	return body.Variables, nil
}

type importState struct {
	tx *transport.Client

	system System
	file   string
}

// ImportBuilder accumulates the parameters of a variable import.
type ImportBuilder struct {
	state importState
}

// Run executes the import.
func (b ImportBuilder) Run(ctx context.Context) error {
	req, err := importEndpoint.Assemble([]endpoint.Field{
		endpoint.PathField("sysplex", b.state.system.sysplex),
		endpoint.PathField("system", b.state.system.system),
	})
	if err != nil {
		return fmt.Errorf("assembling variable import: %w", err)
	}

	if err := req.SetJSONBody(variablesImport{File: b.state.file}); err != nil {
		return fmt.Errorf("encoding variable import: %w", err)
	}

	if _, err := b.state.tx.Do(ctx, req); err != nil {
		return fmt.Errorf("importing system variables into %s: %w", b.state.system.pathValue(), err)
	}

	return nil
}
