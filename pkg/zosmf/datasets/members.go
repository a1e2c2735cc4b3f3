package datasets

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/restfiles"
	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

var membersEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/restfiles/ds/{dataset}/member",
	"dataset",
)

// MemberName is the narrow member listing item carrying the name only.
type MemberName struct {
	Name string `json:"member"`
}

// Member is the wide member listing item carrying ISPF statistics where
// they exist.
type Member struct {
	Name             string  `json:"member"`
	Version          *int    `json:"vers,omitempty"`
	Modification     *int    `json:"mod,omitempty"`
	CreationDate     *string `json:"c4date,omitempty"`
	ModificationDate *string `json:"m4date,omitempty"`
	CurrentLines     *int    `json:"cnorc,omitempty"`
	InitialLines     *int    `json:"inorc,omitempty"`
	ModifiedLines    *int    `json:"mnorc,omitempty"`
	ModificationTime *string `json:"mtime,omitempty"`
	UserID           *string `json:"user,omitempty"`
	SCLMFlag         *string `json:"sclm,omitempty"`
}

// MemberItem constrains the shapes a member listing can decode to.
type MemberItem interface {
	MemberName | Member
}

// Members is a PDS member listing.
type Members[T MemberItem] struct {
	Items         []T
	ReturnedRows  int
	MoreRows      *bool
	TotalRows     *int
	JSONVersion   int
	TransactionID string
}

type membersState struct {
	tx *transport.Client

	dataset        string
	start          string
	pattern        string
	maxItems       *int
	attributes     string
	includeTotal   bool
	migratedRecall zosmf.MigratedRecall
}

func (s membersState) fields() []endpoint.Field {
	maxValue := ""
	if s.maxItems != nil {
		maxValue = strconv.Itoa(*s.maxItems)
	}

	return []endpoint.Field{
		endpoint.PathField("dataset", s.dataset),
		endpoint.QueryValue("start", "start", s.start),
		endpoint.QueryValue("pattern", "pattern", s.pattern),
		endpoint.HeaderField("max_items", "X-IBM-Max-Items", maxValue, s.maxItems != nil),
		endpoint.HeaderValue("migrated_recall", "X-IBM-Migrated-Recall", string(s.migratedRecall)),
		restfiles.AttributesField(s.attributes, "member", s.includeTotal),
	}
}

// MembersBuilder accumulates the parameters of a member listing. The
// type parameter tracks the item shape; Attributes widens it from names
// to ISPF statistics.
type MembersBuilder[T MemberItem] struct {
	state membersState
}

// Start resumes the listing at the given member name.
func (b MembersBuilder[T]) Start(member string) MembersBuilder[T] {
	b.state.start = member

	return b
}

// Pattern keeps only members whose names match the given ISPF pattern.
func (b MembersBuilder[T]) Pattern(pattern string) MembersBuilder[T] {
	b.state.pattern = pattern

	return b
}

// MaxItems caps the number of entries returned.
func (b MembersBuilder[T]) MaxItems(limit int) MembersBuilder[T] {
	b.state.maxItems = &limit

	return b
}

// IncludeTotal asks the server to report the total row count alongside
// the returned page.
func (b MembersBuilder[T]) IncludeTotal() MembersBuilder[T] {
	b.state.includeTotal = true

	return b
}

// MigratedRecall controls how a migrated data set is handled.
func (b MembersBuilder[T]) MigratedRecall(recall zosmf.MigratedRecall) MembersBuilder[T] {
	b.state.migratedRecall = recall

	return b
}

// Attributes widens the item shape to ISPF statistics.
func (b MembersBuilder[T]) Attributes() MembersBuilder[Member] {
	b.state.attributes = "base"

	return MembersBuilder[Member]{state: b.state}
}

// Run executes the member listing.
func (b MembersBuilder[T]) Run(ctx context.Context) (*Members[T], error) {
	req, err := membersEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling member list: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing members of %s: %w", b.state.dataset, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("listing members of %s: %w", b.state.dataset, err)
	}

	body, err := endpoint.JSON[restfiles.ListJSON[T]](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding member list: %w", err)
	}

	return &Members[T]{
		Items:         body.Items,
		ReturnedRows:  body.ReturnedRows,
		MoreRows:      body.MoreRows,
		TotalRows:     body.TotalRows,
		JSONVersion:   body.JSONVersion,
		TransactionID: meta.TransactionID,
	}, nil
}
