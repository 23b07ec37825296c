package main

import (
	"os"
	"strconv"
	"strings"
)

// StaticResolver serves files under a document root. It is the last
// resort of the dispatcher: consulted only for GET requests that matched
// no route.
type StaticResolver struct {
	root string
}

func NewStaticResolver(root string) *StaticResolver {
	return &StaticResolver{root: strings.TrimSuffix(root, "/")}
}

// Resolve maps an already-sanitized request path to a file response.
// Any filesystem failure (missing, unreadable, not a regular file) folds
// into ok=false; callers turn that into a 404.
func (s *StaticResolver) Resolve(path string) (*Response, bool) {
	path = sanitizePath(path)
	if path == "" {
		path = "/"
	}
	if strings.HasSuffix(path, "/") {
		path += "index.html"
	}
	candidate := s.root + path

	info, err := os.Stat(candidate)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	data, err := os.ReadFile(candidate)
	if err != nil {
		return nil, false
	}

	res := NewResponse()
	res.Headers["Content-Type"] = mimeTypeFor(candidate)
	res.Headers["Content-Length"] = strconv.Itoa(len(data))
	res.Body = data
	return res, true
}
