package main

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
)

// Server owns the listening socket and fans accepted connections out to
// workers, at most cfg.MaxConns at a time.
type Server struct {
	cfg    Config
	router *Router
	static *StaticResolver
	log    zerolog.Logger
	sem    chan struct{}
}

func NewServer(cfg Config, log zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		router: NewRouter(),
		static: NewStaticResolver(cfg.DocRoot),
		log:    log,
		sem:    make(chan struct{}, cfg.MaxConns),
	}
}

// Handle registers a route; see Router.Handle.
func (s *Server) Handle(method, path string, handler HandlerFunc) {
	s.router.Handle(method, path, handler)
}

// Use appends a middleware; see Router.Use.
func (s *Server) Use(mw MiddlewareFunc) {
	s.router.Use(mw)
}

func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("Failed to bind %s: %w", addr, err)
	}
	defer ln.Close()
	s.log.Info().Str("addr", addr).Str("root", s.cfg.DocRoot).Msg("listening")
	return s.Serve(ln)
}

// Serve accepts until the listener is closed. Accept errors are logged
// and the loop continues; each connection gets one worker cycle under a
// hard read deadline.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			s.log.Error().Err(err).Msg("accept error")
			if isClosedConnError(err) {
				return nil
			}
			continue
		}
		s.sem <- struct{}{}
		go func(conn net.Conn) {
			defer func() { <-s.sem }()
			if s.cfg.ReadTimeout > 0 {
				conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
			}
			NewWorker(s.router, s.static, s.log).Start(conn)
		}(conn)
	}
}

func isClosedConnError(err error) bool {
	return errors.Is(err, net.ErrClosed)
}
