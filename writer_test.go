package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteResponse(t *testing.T) {
	res := &Response{
		Status: 200,
		Headers: HTTPHeader{
			"Content-Type": "text/plain",
			"Connection":   "close",
		},
		Body: []byte("FooBar"),
	}
	ss := []string{
		"HTTP/1.1 200 OK\r\n",
		"Connection: close\r\n",
		"Content-Length: 6\r\n",
		"Content-Type: text/plain\r\n",
		"\r\n",
		"FooBar",
	}
	w := new(bytes.Buffer)
	if err := WriteResponse(w, res); err != nil {
		t.Fatalf("error: %v", err)
	}
	// Headers come out in sorted key order.
	ExpectEqual(t, strings.Join(ss, ""), w.String())
}

func TestWriteResponseKeepsExplicitContentLength(t *testing.T) {
	res := &Response{
		Status:  204,
		Headers: HTTPHeader{"Content-Length": "0"},
	}
	w := new(bytes.Buffer)
	if err := WriteResponse(w, res); err != nil {
		t.Fatalf("error: %v", err)
	}
	ExpectEqual(t, "HTTP/1.1 204 No Content\r\nContent-Length: 0\r\n\r\n", w.String())
}

func TestWriteResponseUnknownStatus(t *testing.T) {
	res := &Response{Status: 299, Headers: HTTPHeader{}}
	w := new(bytes.Buffer)
	if err := WriteResponse(w, res); err != nil {
		t.Fatalf("error: %v", err)
	}
	if !strings.HasPrefix(w.String(), "HTTP/1.1 299 Unknown\r\n") {
		t.Errorf("unexpected status line: %q", w.String())
	}
}
