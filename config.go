package main

import "time"

// Config is the read-only value object injected into the server. The
// core never parses flags; main owns that.
type Config struct {
	Host        string
	Port        int
	DocRoot     string
	Verbose     bool
	MaxConns    int
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Host:        "127.0.0.1",
		Port:        8080,
		DocRoot:     "./public",
		MaxConns:    64,
		ReadTimeout: 10 * time.Second,
	}
}
