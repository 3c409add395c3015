// Package httputil provides response helpers for the geograph preview server.
//
// Handlers report failures with [Error], which maps the structured error code
// to an HTTP status and writes a JSON body:
//
//	{"error": "vertex 7 not found", "code": "NOT_FOUND"}
//
// Successful JSON payloads go through [JSON]; rendered artifacts through
// [Artifact], which sets the content type for the format.
package httputil
