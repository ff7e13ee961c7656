// Package api serves the form catalog over HTTP.
//
// Routes:
//
//	GET  /forms                  list form names
//	GET  /forms/{name}           describe one form
//	POST /forms/{name}/validate  filter and validate a request body
//	GET  /healthz                readiness probe
//	GET  /metrics                Prometheus exposition
//
// A validation answers 200 when the data is valid and 422 when it is not,
// both with the body {"valid", "data", "errors", "first_errors"}. Unknown
// forms answer 404, undecodable bodies 400 or 415, and misconfigured
// forms 500.
package api
