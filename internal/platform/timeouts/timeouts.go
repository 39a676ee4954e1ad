// Package timeouts defines shared timeout constants for the storefront process.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Request caps the time a single page handler may run.
const Request = 15 * time.Second

// ContactRelay caps one outbound contact-form delivery.
const ContactRelay = 10 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
