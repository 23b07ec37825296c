package main

import (
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
)

// Worker handles one connection for one request/response cycle, then
// closes it. No keep-alive.
type Worker struct {
	conn   net.Conn
	router *Router
	static *StaticResolver
	log    zerolog.Logger
	req    *Request
	res    *Response
}

type stateFunc func(*Worker) stateFunc

func NewWorker(router *Router, static *StaticResolver, log zerolog.Logger) *Worker {
	return &Worker{
		router: router,
		static: static,
		log:    log,
	}
}

// Start runs the dispatch state machine. The worker takes ownership of
// |conn| and closes it in the terminal state.
func (w *Worker) Start(conn net.Conn) {
	w.conn = conn
	for state := readRequest; state != nil; {
		state = state(w)
	}
}

// invokeHandler isolates a handler fault to this connection.
func (w *Worker) invokeHandler(handler HandlerFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	handler(w.req, w.res)
	return nil
}

// state funcs, in pipeline order: parse, middleware, route, static, send.

func readRequest(w *Worker) stateFunc {
	req, err := NewRequestReader(w.conn).ReadRequest()
	if err != nil {
		if errors.Is(err, errInvalidJSON) {
			// Before middleware and routing, per the pipeline contract.
			w.req = req
			w.res = errorResponse(400, err.Error())
			return sendResponse
		}
		// No usable request line: drop the connection silently.
		w.log.Debug().Err(err).Msg("abandoning connection")
		return finishWorker
	}
	w.req = req
	w.res = NewResponse()
	w.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("request")
	return runMiddleware
}

func runMiddleware(w *Worker) stateFunc {
	if !w.router.runMiddleware(w.req, w.res) {
		// Short-circuit is control flow, not an error: send whatever
		// the aborting middleware left behind.
		return sendResponse
	}
	return dispatchRoute
}

func dispatchRoute(w *Worker) stateFunc {
	handler, ok := w.router.lookup(w.req.Method, w.req.Path)
	if !ok {
		return serveStatic
	}
	if err := w.invokeHandler(handler); err != nil {
		w.log.Error().Err(err).Str("path", w.req.Path).Msg("handler failed")
		w.res = errorResponse(500, err.Error())
	}
	return sendResponse
}

func serveStatic(w *Worker) stateFunc {
	if w.req.Method == MethodGet {
		if res, ok := w.static.Resolve(w.req.Path); ok {
			w.res = res
			return sendResponse
		}
	}
	w.res = errorResponse(404, w.req.Path)
	return sendResponse
}

func sendResponse(w *Worker) stateFunc {
	if err := WriteResponse(w.conn, w.res); err != nil {
		w.log.Warn().Err(err).Msg("write failed")
	} else {
		w.log.Info().
			Str("method", w.req.Method).
			Str("path", w.req.Path).
			Int("status", w.res.Status).
			Msg("served")
	}
	return finishWorker
}

func finishWorker(w *Worker) stateFunc {
	if w.conn != nil {
		w.conn.Close()
	}
	return nil
}
