// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreOpen caps how long a service waits for its database to answer the
// first ping.
const StoreOpen = 5 * time.Second

// Request bounds a single storage-backed HTTP or MCP request.
const Request = 10 * time.Second
