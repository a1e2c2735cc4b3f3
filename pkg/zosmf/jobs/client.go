// Package jobs provides typed access to the z/OSMF job REST interface:
// listing and inspecting jobs, reading spool files, submitting JCL, and
// driving job lifecycle actions.
package jobs

import (
	"strconv"

	"github.com/zosmf-community/zosmf-go/internal/transport"
)

// Client executes job operations against a single z/OSMF host.
type Client struct {
	tx *transport.Client
}

// NewClient wraps a transport for the job endpoints.
func NewClient(tx *transport.Client) *Client {
	return &Client{tx: tx}
}

// List prepares a listing of the jobs owned by the authenticated user.
// The default item shape carries scheduling data only; ExecData widens
// it with execution timestamps.
func (c *Client) List() ListBuilder[Job] {
	return ListBuilder[Job]{state: listState{tx: c.tx}}
}

// Status prepares a status query for one job.
func (c *Client) Status(id Identifier) StatusBuilder[Job] {
	return StatusBuilder[Job]{state: statusState{tx: c.tx, identifier: id}}
}

// Files prepares a listing of a job's spool files.
func (c *Client) Files(id Identifier) FilesBuilder {
	return FilesBuilder{state: filesState{tx: c.tx, identifier: id}}
}

// ReadFile prepares a read of one spool file, addressed by the numeric
// file id reported by Files.
func (c *Client) ReadFile(id Identifier, fileID int) ReadFileBuilder[string] {
	return ReadFileBuilder[string]{state: readFileState{tx: c.tx, identifier: id, file: strconv.Itoa(fileID)}}
}

// ReadJCL prepares a read of the JCL the job was submitted with.
func (c *Client) ReadJCL(id Identifier) ReadFileBuilder[string] {
	return ReadFileBuilder[string]{state: readFileState{tx: c.tx, identifier: id, file: "JCL"}}
}

// Submit prepares submission of the given JCL text.
func (c *Client) Submit(jcl string) SubmitBuilder {
	return SubmitBuilder{state: submitState{tx: c.tx, jcl: jcl}}
}

// SubmitFromFile prepares submission of JCL stored on the host, named by
// a data set or UNIX file reference such as "//'SYS1.PROCLIB(JOB)'".
func (c *Client) SubmitFromFile(file string) SubmitBuilder {
	return SubmitBuilder{state: submitState{tx: c.tx, file: file}}
}

// Cancel stops the given job.
func (c *Client) Cancel(id Identifier) ActionBuilder {
	return ActionBuilder{state: actionState{tx: c.tx, identifier: id, request: "cancel"}}
}

// Hold keeps the given job from being selected for execution.
func (c *Client) Hold(id Identifier) ActionBuilder {
	return ActionBuilder{state: actionState{tx: c.tx, identifier: id, request: "hold"}}
}

// Release makes a held job eligible for execution again.
func (c *Client) Release(id Identifier) ActionBuilder {
	return ActionBuilder{state: actionState{tx: c.tx, identifier: id, request: "release"}}
}

// ChangeClass moves the given job to another execution class.
func (c *Client) ChangeClass(id Identifier, class string) ActionBuilder {
	return ActionBuilder{state: actionState{tx: c.tx, identifier: id, class: class}}
}

// CancelAndPurge stops the given job and removes its output from spool.
func (c *Client) CancelAndPurge(id Identifier) PurgeBuilder {
	return PurgeBuilder{state: actionState{tx: c.tx, identifier: id}}
}
