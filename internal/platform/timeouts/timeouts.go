// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// APIRequest caps a single browser-driven call to the remote API.
const APIRequest = 10 * time.Second

// SignOutNotify caps the background sign-out notification sent to the API.
const SignOutNotify = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
