// Package datasets provides typed access to the z/OSMF data set REST
// interface: listing catalogs and PDS members, reading, writing,
// creating, deleting, and migrating MVS data sets.
package datasets

import "github.com/zosmf-community/zosmf-go/internal/transport"

// Client executes data set operations against a single z/OSMF host.
type Client struct {
	tx *transport.Client
}

// NewClient wraps a transport for the data set endpoints.
func NewClient(tx *transport.Client) *Client {
	return &Client{tx: tx}
}

// List prepares a catalog search for data sets whose names match the
// given filter pattern. The default item shape carries names only;
// Attributes widens it to the full attribute set.
func (c *Client) List(level string) ListBuilder[DatasetName] {
	return ListBuilder[DatasetName]{state: listState{tx: c.tx, level: level}}
}

// Members prepares a member listing for the given partitioned data set.
func (c *Client) Members(dataset string) MembersBuilder[MemberName] {
	return MembersBuilder[MemberName]{state: membersState{tx: c.tx, dataset: dataset}}
}

// Read prepares a read of the given data set. The default representation
// is text decoded to a string; Binary and Record switch to raw bytes.
func (c *Client) Read(dataset string) ReadBuilder[string] {
	return ReadBuilder[string]{state: readState{tx: c.tx, dataset: dataset}}
}

// Write prepares a write to the given data set.
func (c *Client) Write(dataset string) WriteBuilder {
	return WriteBuilder{state: writeState{tx: c.tx, dataset: dataset}}
}

// Create prepares allocation of a new data set with the given name.
func (c *Client) Create(dataset string) CreateBuilder {
	return CreateBuilder{state: createState{tx: c.tx, dataset: dataset}}
}

// Delete prepares removal of the given data set.
func (c *Client) Delete(dataset string) DeleteBuilder {
	return DeleteBuilder{state: deleteState{tx: c.tx, dataset: dataset}}
}

// Migrate prepares migration of the given data set to secondary storage.
func (c *Client) Migrate(dataset string) MigrateBuilder {
	return MigrateBuilder{state: actionState{tx: c.tx, dataset: dataset}}
}

// Recall prepares recall of the given migrated data set back to primary
// storage.
func (c *Client) Recall(dataset string) RecallBuilder {
	return RecallBuilder{state: actionState{tx: c.tx, dataset: dataset}}
}
