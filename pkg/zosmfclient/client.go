// Package zosmfclient assembles the service clients of this module into
// a single entry point bound to one z/OSMF host.
package zosmfclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/zosmf-community/zosmf-go/internal/endpoint"
	"github.com/zosmf-community/zosmf-go/internal/transport"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf/datasets"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf/files"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf/jobs"
	"github.com/zosmf-community/zosmf-go/pkg/zosmf/sysvars"
)

var (
	authEndpoint = endpoint.MustNew(http.MethodPost, "/zosmf/services/authenticate")
	endEndpoint  = endpoint.MustNew(http.MethodDelete, "/zosmf/services/authenticate")
	infoEndpoint = endpoint.MustNew(http.MethodGet, "/zosmf/info")
)

// Info describes the z/OSMF instance a client is bound to.
type Info struct {
	Version     string `json:"zosmf_version"`
	FullVersion string `json:"zosmf_full_version"`
	APIVersion  string `json:"api_version"`
	ZOSVersion  string `json:"zos_version"`
	Hostname    string `json:"zosmf_hostname"`
	Port        string `json:"zosmf_port"`
	SAFRealm    string `json:"zosmf_saf_realm"`
}

// Client is a connection to one z/OSMF host. Construct it with New and
// establish a session with Login before invoking the service clients;
// the session cookie then authenticates every later request.
type Client struct {
	tx     *transport.Client
	config *zosmf.Config

	datasets *datasets.Client
	files    *files.Client
	jobs     *jobs.Client
	sysvars  *sysvars.Client
}

// New builds a client from the given configuration.
func New(config *zosmf.Config) (*Client, error) {
	if config == nil {
		return nil, zosmf.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, zosmf.ErrBaseURLRequired
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")

	opts := []transport.Option{
		transport.WithDebug(config.Debug),
	}
	if config.Logger != nil {
		opts = append(opts, transport.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		opts = append(opts, transport.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	tx := transport.NewClient(baseURL, opts...)

	return &Client{
		tx:       tx,
		config:   config,
		datasets: datasets.NewClient(tx),
		files:    files.NewClient(tx),
		jobs:     jobs.NewClient(tx),
		sysvars:  sysvars.NewClient(tx),
	}, nil
}

// Login establishes a session with the configured credentials. The
// session token travels as a cookie on every later request, so the
// credentials are not resent.
func (c *Client) Login(ctx context.Context) error {
	req, err := authEndpoint.Assemble(nil)
	if err != nil {
		return fmt.Errorf("assembling login: %w", err)
	}

	req.SetBasicAuth(c.config.Username, c.config.Password)

	if _, err := c.tx.Do(ctx, req); err != nil {
		return fmt.Errorf("logging in to %s: %w", c.tx.BaseURL(), err)
	}

	return nil
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	req, err := endEndpoint.Assemble(nil)
	if err != nil {
		return fmt.Errorf("assembling logout: %w", err)
	}

	if _, err := c.tx.Do(ctx, req); err != nil {
		return fmt.Errorf("logging out of %s: %w", c.tx.BaseURL(), err)
	}

	return nil
}

// Info reports version information about the connected instance.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	req, err := infoEndpoint.Assemble(nil)
	if err != nil {
		return nil, fmt.Errorf("assembling info: %w", err)
	}

	resp, err := c.tx.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("querying instance info: %w", err)
	}

	info, err := endpoint.JSON[Info](resp)
	if err != nil {
		return nil, fmt.Errorf("decoding instance info: %w", err)
	}

	return &info, nil
}

// Datasets exposes the data set operations.
func (c *Client) Datasets() *datasets.Client {
	return c.datasets
}

// Files exposes the UNIX file operations.
func (c *Client) Files() *files.Client {
	return c.files
}

// Jobs exposes the job operations.
func (c *Client) Jobs() *jobs.Client {
	return c.jobs
}

// SystemVariables exposes the system variable operations.
func (c *Client) SystemVariables() *sysvars.Client {
	return c.sysvars
}
