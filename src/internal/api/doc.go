// Package api provides a read-only HTTP API for previewing generated address groups.
//
// The configuration is loaded on every request, so edits to the config file
// are picked up without restarting the server. Rendering fetches all sources
// of the pipeline again and never writes the output file.
//
// # Endpoints
//
//	GET /api/v1/health                  {"status":"ok"}
//	GET /api/v1/pipelines               configured pipelines
//	GET /api/v1/pipelines/{name}/render import file as text/plain
//
// # Response Format
//
// JSON responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "not_found",
//	    "message": "Human-readable error message"
//	  }
//	}
package api
