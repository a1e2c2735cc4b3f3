package files

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/restfiles"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var listEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restfiles/fs")

// Filter matches an exact value by default; GreaterThan and LessThan
// build the prefixed forms the mtime and size filters understand.
type Filter string

// GreaterThan matches values strictly above v.
func GreaterThan(v string) Filter {
	return Filter("+" + v)
}

// LessThan matches values strictly below v.
func LessThan(v string) Filter {
	return Filter("-" + v)
}

// FileType narrows a listing to one kind of file system object.
type FileType string

// File type filter values.
const (
	FileTypeCharacter FileType = "c"
	FileTypeDirectory FileType = "d"
	FileTypeFIFO      FileType = "p"
	FileTypeRegular   FileType = "f"
	FileTypeSocket    FileType = "s"
	FileTypeSymlink   FileType = "l"
)

// FileSystemScope controls whether a listing crosses mount points.
type FileSystemScope string

// File system scope values.
const (
	ScopeAll  FileSystemScope = "all"
	ScopeSame FileSystemScope = "same"
)

// SymlinkHandling controls how symbolic links appear in a listing.
type SymlinkHandling string

// Symlink handling values.
const (
	SymlinksFollow SymlinkHandling = "follow"
	SymlinksReport SymlinkHandling = "report"
)

// File is one entry of a directory listing.
type File struct {
	Name  string `json:"name"`
	Mode  string `json:"mode"`
	Size  int64  `json:"size"`
	UID   int    `json:"uid"`
	User  string `json:"user"`
	GID   *int   `json:"gid,omitempty"`
	Group string `json:"group,omitempty"`
	MTime string `json:"mtime"`
}

// List is a directory listing.
type List struct {
	Items         []File
	ReturnedRows  int
	TotalRows     *int
	JSONVersion   int
	TransactionID string
}

type listState struct {
	tx *transport.Client

	path      string
	name      string
	group     string
	user      string
	mtime     Filter
	size      Filter
	perm      string
	fileType  FileType
	depth     *int
	filesys   FileSystemScope
	symlinks  SymlinkHandling
	limit     *int
	statLinks bool
}

func (s listState) fields() []endpoint.Field {
	intValue := func(p *int) string {
		if p == nil {
			return ""
		}

		return strconv.Itoa(*p)
	}

	return []endpoint.Field{
		endpoint.QueryValue("path", "path", s.path),
		endpoint.QueryValue("name", "name", s.name),
		endpoint.QueryValue("group", "group", s.group),
		endpoint.QueryValue("user", "user", s.user),
		endpoint.QueryValue("mtime", "mtime", string(s.mtime)),
		endpoint.QueryValue("size", "size", string(s.size)),
		endpoint.QueryValue("perm", "perm", s.perm),
		endpoint.QueryValue("type", "type", string(s.fileType)),
		endpoint.QueryField("depth", "depth", intValue(s.depth), s.depth != nil),
		endpoint.QueryValue("filesys", "filesys", string(s.filesys)),
		endpoint.QueryValue("symlinks", "symlinks", string(s.symlinks)),
		endpoint.QueryField("limit", "limit", intValue(s.limit), s.limit != nil),
		endpoint.FlagHeader("lstat", "X-IBM-Lstat", s.statLinks),
	}
}

// ListBuilder accumulates the filters of a directory listing.
type ListBuilder struct {
	state listState
}

// Name keeps only entries whose name matches the given pattern.
func (b ListBuilder) Name(pattern string) ListBuilder {
	b.state.name = pattern

	return b
}

// Group keeps only entries owned by the given group.
func (b ListBuilder) Group(group string) ListBuilder {
	b.state.group = group

	return b
}

// User keeps only entries owned by the given user.
func (b ListBuilder) User(user string) ListBuilder {
	b.state.user = user

	return b
}

// ModifiedDays filters on days since last modification.
func (b ListBuilder) ModifiedDays(filter Filter) ListBuilder {
	b.state.mtime = filter

	return b
}

// Size filters on file size in bytes.
func (b ListBuilder) Size(filter Filter) ListBuilder {
	b.state.size = filter

	return b
}

// Permissions keeps only entries matching the given octal permission mask.
func (b ListBuilder) Permissions(perm string) ListBuilder {
	b.state.perm = perm

	return b
}

// Type keeps only entries of the given kind.
func (b ListBuilder) Type(fileType FileType) ListBuilder {
	b.state.fileType = fileType

	return b
}

// Depth caps how many directory levels the listing descends.
func (b ListBuilder) Depth(depth int) ListBuilder {
	b.state.depth = &depth

	return b
}

// FileSystem controls whether the listing crosses mount points.
func (b ListBuilder) FileSystem(scope FileSystemScope) ListBuilder {
	b.state.filesys = scope

	return b
}

// Symlinks controls whether symbolic links are followed or reported.
func (b ListBuilder) Symlinks(handling SymlinkHandling) ListBuilder {
	b.state.symlinks = handling

	return b
}

// Limit caps the number of entries returned.
func (b ListBuilder) Limit(limit int) ListBuilder {
	b.state.limit = &limit

	return b
}

// StatSymlinks reports the attributes of symbolic links themselves
// instead of their targets.
func (b ListBuilder) StatSymlinks() ListBuilder {
	b.state.statLinks = true

	return b
}

// Run executes the listing.
func (b ListBuilder) Run(ctx context.Context) (*List, error) {
	req, err := listEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling file list: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing files under %s: %w", b.state.path, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("listing files under %s: %w", b.state.path, err)
	}

	body, err := endpoint.JSON[restfiles.ListJSON[File]](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding file list: %w", err)
	}

	return &List{
		Items:         body.Items,
		ReturnedRows:  body.ReturnedRows,
		TotalRows:     body.TotalRows,
		JSONVersion:   body.JSONVersion,
		TransactionID: meta.TransactionID,
	}, nil
}
