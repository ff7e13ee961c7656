// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a time-ordered UUID, stores it in the request context and echoes it
// in the response. LogExtractor plugs the identifier into loggers built with
// pkg/logger so every record written while serving a request carries it.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
