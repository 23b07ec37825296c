package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	host     = flag.String("host", "127.0.0.1", "listen host")
	port     = flag.Int("port", 8080, "listen port")
	docRoot  = flag.String("root", "./public", "document root for static files")
	verbose  = flag.Bool("verbose", false, "debug logging")
	maxConns = flag.Int("max-conns", 64, "max concurrent connections")
	timeout  = flag.Int("timeout", 10, "per-connection read timeout in seconds")
)

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	flag.Parse()
	log := newLogger(*verbose)

	cfg := Config{
		Host:        *host,
		Port:        *port,
		DocRoot:     *docRoot,
		Verbose:     *verbose,
		MaxConns:    *maxConns,
		ReadTimeout: time.Duration(*timeout) * time.Second,
	}

	// Fail fast on a missing document root.
	if info, err := os.Stat(cfg.DocRoot); err != nil || !info.IsDir() {
		log.Fatal().Str("root", cfg.DocRoot).Msg("document root is not a directory")
	}

	srv := NewServer(cfg, log)
	registerDemoRoutes(srv, log)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
