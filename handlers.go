package main

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Demo consumers of the route/middleware API. Nothing in the core
// depends on these.

var startTime = time.Now()

func writeJSON(res *Response, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err) // becomes a 500 via the worker's recover
	}
	res.Headers["Content-Type"] = "application/json"
	res.Body = data
}

// GET /api/status
func statusHandler(req *Request, res *Response) {
	writeJSON(res, map[string]interface{}{
		"status":         "ok",
		"version":        serverVersion,
		"uptime_seconds": int(time.Since(startTime).Seconds()),
	})
}

// POST /api/echo mirrors the parsed request back: `json` is the parsed
// JSON value (null when absent), `body` the raw bytes as a string.
func echoHandler(req *Request, res *Response) {
	writeJSON(res, map[string]interface{}{
		"method":  req.Method,
		"path":    req.Path,
		"headers": req.Headers,
		"params":  req.Params,
		"json":    req.JSON,
		"body":    string(req.Body),
	})
}

// requestLogMiddleware never short-circuits; it exists to show the
// middleware contract.
func requestLogMiddleware(log zerolog.Logger) MiddlewareFunc {
	return func(req *Request, res *Response) bool {
		log.Debug().
			Str("method", req.Method).
			Str("uri", req.URI).
			Int("params", len(req.Params)).
			Msg("middleware saw request")
		return true
	}
}

func registerDemoRoutes(s *Server, log zerolog.Logger) {
	s.Use(requestLogMiddleware(log))
	s.Handle(MethodGet, "/api/status", statusHandler)
	s.Handle(MethodPost, "/api/echo", echoHandler)
}
