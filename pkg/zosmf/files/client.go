// Package files provides typed access to the z/OSMF UNIX file REST
// interface: listing directories, reading, writing, and deleting files
// in the z/OS UNIX file system.
package files

import "github.com/zosmf-community/zosmf-go/internal/transport"

// Client executes UNIX file operations against a single z/OSMF host.
type Client struct {
	tx *transport.Client
}

// NewClient wraps a transport for the file endpoints.
func NewClient(tx *transport.Client) *Client {
	return &Client{tx: tx}
}

// List prepares a directory listing rooted at the given absolute path.
func (c *Client) List(path string) ListBuilder {
	return ListBuilder{state: listState{tx: c.tx, path: path}}
}

// Read prepares a read of the file at the given absolute path. The
// default representation is text decoded to a string; Binary switches
// to raw bytes.
func (c *Client) Read(path string) ReadBuilder[string] {
	return ReadBuilder[string]{state: readState{tx: c.tx, path: path}}
}

// Write prepares a write to the file at the given absolute path. The
// file is created when it does not exist.
func (c *Client) Write(path string) WriteBuilder {
	return WriteBuilder{state: writeState{tx: c.tx, path: path}}
}

// Delete prepares removal of the file or directory at the given path.
func (c *Client) Delete(path string) DeleteBuilder {
	return DeleteBuilder{state: deleteState{tx: c.tx, path: path}}
}
