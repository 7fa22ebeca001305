// Package lsclient provides the primary entry point for constructing a
// Lightspeed eCom API client that implements the lightspeed.Client interface.
//
// It layers the HTTP transport and basic authentication on top of a
// lightspeed.RequestConfig. The config decides where requests go: use
// lightspeed.APIConfig for a real shop and lightspeedtest.Config for a stub
// server. The client itself does not know which one it holds.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "time"
//
//	  "github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
//	  "github.com/fivetwenty-io/lightspeed/pkg/lsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cfg := lightspeed.NewAPIConfig("key", "secret", lightspeed.ClusterUS1, lightspeed.LanguageEN)
//	  cli, err := lsclient.NewWithOptions(cfg, &lightspeed.Options{
//	    HTTPTimeout: 30 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  account, err := cli.Account(ctx)
//	  if err != nil { log.Fatal(err) }
//	  log.Printf("account %d", account.ID)
//	}
//
// # Concurrency
//
// A client may be shared between goroutines. Requests do not share mutable
// state and are not ordered relative to each other. Clients built from
// different configs do not interfere.
//
// # Helpers
//
// NewWithCredentials wraps New with an APIConfig built from its arguments.
package lsclient
