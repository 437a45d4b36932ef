// Package http implements the REST transport of finance-flow.
//
// Init returns a chi mux carrying the cross-cutting middleware (trace ids,
// access logging, panic recovery, metrics, CORS, compression and request
// timeouts) and the operational endpoints /health, /version and /metrics.
// Every other request, with or without the /api prefix, enters the request
// pipeline: the path is resolved against the application route table,
// protected endpoints authenticate the bearer token, declared rule sets
// validate the JSON body, and the endpoint handler calls the services.
// All application responses use the {success, message, data} envelope.
package http
