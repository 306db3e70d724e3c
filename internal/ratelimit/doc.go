// Package ratelimit throttles inbound API requests per client.
//
// Store keeps one token bucket (golang.org/x/time/rate) per client key and
// forgets keys that stay idle. Middleware adapts it to gin: it answers 429 with
// a Retry-After header once a client's bucket is empty. Outbound calls to the
// upstream sources are never throttled.
package ratelimit
