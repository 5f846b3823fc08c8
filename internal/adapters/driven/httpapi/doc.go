// Package httpapi implements driven.CustomerAPI over the customer REST API.
//
// Every call performs exactly one HTTP request. Calls are throttled by a
// client-side token bucket and are never retried.
package httpapi
