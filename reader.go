package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// errMalformedRequestLine means no usable request arrived; the
	// connection is dropped without a response.
	errMalformedRequestLine = errors.New("malformed request line")

	// errInvalidJSON short-circuits the pipeline into a 400 before any
	// middleware or route runs.
	errInvalidJSON = errors.New("invalid JSON body")
)

// RequestReader reads exactly one HTTP/1.x request from a connection.
type RequestReader struct {
	r *bufio.Reader
}

func NewRequestReader(r io.Reader) *RequestReader {
	var br *bufio.Reader
	if casted, ok := r.(*bufio.Reader); ok {
		br = casted
	} else {
		br = bufio.NewReader(r)
	}
	return &RequestReader{br}
}

// similar to readLineSlice() in net/textproto/reader.go
func (r *RequestReader) readLine() (string, error) {
	var line []byte
	for {
		l, more, err := r.r.ReadLine()
		if err != nil {
			return "", err
		}
		if line == nil && !more {
			return string(l), nil
		}
		line = append(line, l...)
		if !more {
			break
		}
	}
	return string(line), nil
}

// readHeaders consumes header lines until the blank terminator. Names are
// folded to lowercase; duplicates are last-write-wins. Lines that are not
// name:value pairs are skipped, not fatal.
func (r *RequestReader) readHeaders() (HTTPHeader, error) {
	headers := make(HTTPHeader)
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, fmt.Errorf("Failed to read headers: %w", err)
		}
		if len(line) == 0 {
			break
		}
		fs := strings.SplitN(line, ":", 2)
		if len(fs) != 2 {
			continue
		}
		hdr := strings.ToLower(strings.TrimSpace(fs[0]))
		headers[hdr] = strings.TrimSpace(fs[1])
	}
	return headers, nil
}

// ReadRequest builds a Request or fails. On errInvalidJSON the returned
// Request is still valid; every other error abandons the connection.
func (r *RequestReader) ReadRequest() (*Request, error) {
	req := &Request{Params: make(map[string]string)}
	if err := r.readRequestLine(req); err != nil {
		return nil, err
	}
	headers, err := r.readHeaders()
	if err != nil {
		return nil, err
	}
	req.Headers = headers

	if err := r.readBody(req); err != nil {
		return nil, err
	}

	contentType := req.Headers["content-type"]
	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		parseFormInto(req.Params, string(req.Body))
	}
	// Query pairs apply after body pairs and win on shared keys.
	if req.Query != "" {
		parseFormInto(req.Params, req.Query)
	}

	if strings.Contains(contentType, "application/json") {
		v, err := ParseJSON(req.Body)
		if err != nil {
			return req, fmt.Errorf("%w: %v", errInvalidJSON, err)
		}
		req.JSON = v
	}
	return req, nil
}

func (r *RequestReader) readRequestLine(req *Request) error {
	rl, err := r.readLine()
	if err != nil {
		return fmt.Errorf("Failed to read request line: %w", err)
	}
	fields := strings.Split(rl, " ")
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", errMalformedRequestLine, rl)
	}
	req.Method = fields[0]
	req.URI = fields[1]
	req.Version = fields[2]

	path, query, _ := strings.Cut(req.URI, "?")
	req.Query = query
	req.Path = sanitizePath(percentDecode(path))
	return nil
}

func (r *RequestReader) readBody(req *Request) error {
	cls, ok := req.Headers["content-length"]
	if !ok {
		return nil
	}
	cl, err := strconv.Atoi(cls)
	if err != nil || cl <= 0 {
		return nil
	}
	body := make([]byte, cl)
	if _, err := io.ReadFull(r.r, body); err != nil {
		return fmt.Errorf("Failed to read body: %w", err)
	}
	req.Body = body
	return nil
}

// sanitizePath strips every literal ".." substring. Deliberately a
// substring strip, not segment-aware canonicalization; the resolver only
// guarantees the constructed path stays textually under the root.
func sanitizePath(path string) string {
	for strings.Contains(path, "..") {
		path = strings.ReplaceAll(path, "..", "")
	}
	return path
}
