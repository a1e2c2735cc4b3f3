package datasets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/restfiles"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var deleteEndpoint = endpoint.MustNew(http.MethodDelete, "/zosmf/restfiles/ds/{volume}{dataset}{member}",
	"volume", "dataset", "member",
)

// Delete is the outcome of a data set deletion.
type Delete struct {
	TransactionID string
}

type deleteState struct {
	tx *transport.Client

	dataset        string
	volume         string
	member         string
	dsnameEncoding string
}

// DeleteBuilder accumulates the parameters of a data set deletion.
type DeleteBuilder struct {
	state deleteState
}

// Volume deletes the data set from the given uncataloged volume.
func (b DeleteBuilder) Volume(volume string) DeleteBuilder {
	b.state.volume = restfiles.VolumeQualifier(volume)

	return b
}

// Member deletes only the given member of a partitioned data set.
func (b DeleteBuilder) Member(member string) DeleteBuilder {
	b.state.member = restfiles.MemberQualifier(member)

	return b
}

// DsnameEncoding names the charset the data set name is encoded in.
func (b DeleteBuilder) DsnameEncoding(charset string) DeleteBuilder {
	b.state.dsnameEncoding = charset

	return b
}

// Run executes the deletion.
func (b DeleteBuilder) Run(ctx context.Context) (*Delete, error) {
	req, err := deleteEndpoint.Assemble([]endpoint.Field{
		endpoint.PathField("volume", b.state.volume),
		endpoint.PathField("dataset", b.state.dataset),
		endpoint.PathField("member", b.state.member),
		endpoint.HeaderValue("dsname_encoding", "X-IBM-Dsname-Encoding", b.state.dsnameEncoding),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling dataset delete: %w", err)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deleting dataset %s: %w", b.state.dataset, err)
	}

	meta, err := endpoint.Metadata(resp)
	if err != nil {
		return nil, fmt.Errorf("deleting dataset %s: %w", b.state.dataset, err)
	}

	return &Delete{TransactionID: meta.TransactionID}, nil
}
