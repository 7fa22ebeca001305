// Package lightspeed provides types, interfaces, and helpers for working with
// the Lightspeed eCom REST API.
//
// # Overview
//
// The lightspeed package defines the request configuration (Cluster,
// Language, RequestConfig, APIConfig), the resource types (Account,
// AccountResponse, AppID, Link) and the error taxonomy. A concrete client is
// built by the lsclient package, which wires the transport and basic
// authentication around a RequestConfig.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
//	  "github.com/fivetwenty-io/lightspeed/pkg/lsclient"
//	)
//
//	func example() {
//	  cfg := lightspeed.NewAPIConfig("key", "secret", lightspeed.ClusterEU1, lightspeed.LanguageEN)
//	  cli, err := lsclient.New(cfg)
//	  if err != nil { log.Fatal(err) }
//
//	  account, err := cli.Account(context.Background())
//	  if err != nil { log.Fatal(err) }
//	  _ = account
//	}
//
// # URLs
//
// APIConfig resolves a resource path to
// "<cluster base URL><language code>/<path>". A leading slash on the path is
// optional:
//
//	cfg.ResolveURL("/account.json") // https://api.webshopapp.com/en/account.json
//	cfg.ResolveURL("account.json")  // https://api.webshopapp.com/en/account.json
//
// Tests can target a stub server instead with lightspeedtest.Config.
//
// # Errors
//
// Client constructors fail only with TransportInitError. Calls fail with
// RequestError (transport failure or non-2xx status) or DecodeError (body
// not JSON, or JSON of the wrong shape). Nothing is retried; IsNotFound and
// IsUnauthorized help callers branch on common statuses.
package lightspeed
