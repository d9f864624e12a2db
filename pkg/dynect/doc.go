// Package dynect provides types, interfaces, and helpers for working with the
// Dyn (Dynect) managed DNS REST API.
//
// # Overview
//
// The dynect package defines the response envelope, the typed data payloads
// (Zone, ARecord, CNAMERecord), and the interfaces for the resource clients
// (ZonesClient, NodesClient, ARecordsClient, CNAMERecordsClient). A concrete
// implementation is provided by the dynclient package, which wires
// configuration, transport, and the session token. Most consumers should import
// dynclient to construct a client and then use the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/dynect/pkg/dynclient"
//	  "github.com/fivetwenty-io/dynect/pkg/dynect"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dynclient.New(&dynect.Config{
//	    Credentials: dynect.Credentials{
//	      CustomerName: "example",
//	      UserName:     "api-user",
//	      Password:     "secret",
//	    },
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  if !cli.Login(ctx) { log.Fatal("login failed") }
//	  defer cli.Logout(ctx)
//
//	  zones, ok := cli.Zones().List(ctx)
//	  if !ok { log.Fatal("listing zones failed") }
//	  _ = zones
//	}
//
// # Results
//
// Client operations never return errors. Mutating operations return a bool,
// read operations return the decoded data and a bool. A false result covers
// transport failures, malformed responses, and envelopes whose status is not
// "success" alike. The raw body of the most recent call is available through
// Client.LastResult for diagnostics, and transport errors are reported to the
// configured Logger.
//
// # Sessions
//
// Login stores the token returned by the Session endpoint and attaches it to
// every later request in the Auth-Token header. Logout ends the remote session
// but leaves the local token in place; discard the client afterwards.
//
// # Low-level access
//
// Execute issues an arbitrary call against the API and returns the parsed
// envelope. DecodeData decodes its data field into an operation-specific type.
package dynect
