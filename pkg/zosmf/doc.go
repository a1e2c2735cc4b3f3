// Package zosmf provides the shared types, configuration, and error
// taxonomy for the z/OSMF REST API client.
//
// # Overview
//
// The zosmf package defines the pieces every endpoint wrapper shares: the
// Config used to construct a session, the Logger interface consumed by the
// transport layer, the wire enums for vendor headers (DataType,
// MigratedRecall, ObtainEnq), and the error types returned by every
// operation. The concrete session and the per-domain builder factories live
// in the zosmfclient package and its sibling domain packages (datasets,
// files, jobs, sysvars).
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/zosmf-community/zosmf-go/pkg/zosmf"
//	  "github.com/zosmf-community/zosmf-go/pkg/zosmfclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := zosmfclient.New(&zosmf.Config{
//	    BaseURL:  "https://zosmf.example.com",
//	    Username: "IBMUSER",
//	    Password: "secret",
//	  })
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  if err := cli.Login(ctx); err != nil {
//	    log.Fatal(err)
//	  }
//	  defer cli.Logout(ctx)
//
//	  list, err := cli.Datasets().List("IBMUSER.**").Run(ctx)
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//	  _ = list
//	}
//
// # Errors
//
// Failures are split into three kinds so callers can tell "server
// unreachable" apart from "server returned something we can't understand":
// APIError for transport-level failures carrying the z/OSMF error body,
// HeaderError for missing or malformed protocol metadata headers, and
// DecodeError for response bodies that do not parse as the requested
// representation. Helpers such as IsNotFound and IsUnauthorized make it
// easy to branch on common cases.
package zosmf
