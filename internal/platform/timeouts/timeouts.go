// Package timeouts defines shared timeout constants for the storefront
// server and its catalog sources.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// CatalogFetch caps a single product resource fetch.
const CatalogFetch = 10 * time.Second

// CatalogLoad caps a whole background catalog load for one visitor.
const CatalogLoad = 30 * time.Second
