package jobs

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
)

var submitEndpoint = endpoint.MustNew(http.MethodPut, "/zosmf/restjobs/jobs")

type submitReference struct {
	File string `json:"file"`
}

type submitState struct {
	tx *transport.Client

	jcl         string
	file        string
	intrdrClass string
	recfm       string
	lrecl       *int
	correlator  string
	notifyURL   string
}

func (s submitState) fields() []endpoint.Field {
	lreclValue := ""
	if s.lrecl != nil {
		lreclValue = strconv.Itoa(*s.lrecl)
	}

	return []endpoint.Field{
		endpoint.HeaderValue("intrdr_class", "X-IBM-Intrdr-Class", s.intrdrClass),
		endpoint.HeaderValue("recfm", "X-IBM-Intrdr-Recfm", s.recfm),
		endpoint.HeaderField("lrecl", "X-IBM-Intrdr-Lrecl", lreclValue, s.lrecl != nil),
		endpoint.HeaderValue("correlator", "X-IBM-User-Correlator", s.correlator),
		endpoint.HeaderValue("notify_url", "X-IBM-Notification-URL", s.notifyURL),
	}
}

// SubmitBuilder accumulates the parameters of a job submission. The JCL
// either travels inline as the request body or is referenced by a host
// file name.
type SubmitBuilder struct {
	state submitState
}

// InternalReaderClass sets the class the internal reader submits under.
func (b SubmitBuilder) InternalReaderClass(class string) SubmitBuilder {
	b.state.intrdrClass = class

	return b
}

// RecordFormat sets the record format of the inline JCL, "F" or "V".
func (b SubmitBuilder) RecordFormat(recfm string) SubmitBuilder {
	b.state.recfm = recfm

	return b
}

// RecordLength sets the record length of the inline JCL.
func (b SubmitBuilder) RecordLength(lrecl int) SubmitBuilder {
	b.state.lrecl = &lrecl

	return b
}

// UserCorrelator attaches a caller chosen correlator to the job.
func (b SubmitBuilder) UserCorrelator(correlator string) SubmitBuilder {
	b.state.correlator = correlator

	return b
}

// NotifyURL registers a URL the server posts job state changes to.
func (b SubmitBuilder) NotifyURL(url string) SubmitBuilder {
	b.state.notifyURL = url

	return b
}

// Run executes the submission and reports the scheduled job.
func (b SubmitBuilder) Run(ctx context.Context) (*Job, error) {
	req, err := submitEndpoint.Assemble(b.state.fields())
	if err != nil {
		return nil, fmt.Errorf("assembling job submit: %w", err)
	}

	if b.state.file != "" {
		if err := req.SetJSONBody(submitReference{File: b.state.file}); err != nil {
			return nil, fmt.Errorf("encoding job submit reference: %w", err)
		}
	} else {
		req.SetHeader("Content-Type", "text/plain")
		req.Body = []byte(b.state.jcl)
	}

	resp, err := b.state.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submitting job: %w", err)
	}

	job, err := endpoint.JSON[Job](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding submitted job: %w", err)
	}

	return &job, nil
}
