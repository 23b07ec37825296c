package main

import "fmt"

const serverVersion = "0.3.0"

const serverName = "tinyserve/" + serverVersion

// Not map[string][]string, unlike http.Header
type HTTPHeader map[string]string

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Request is built once by RequestReader and read-only afterwards.
// Path is percent-decoded with every literal ".." stripped; URI keeps the
// raw target. Params merges form-body pairs and query pairs, query pairs
// applied last.
type Request struct {
	Method  string
	URI     string
	Path    string
	Query   string
	Version string
	Headers HTTPHeader
	Body    []byte
	JSON    *JSONValue // nil unless Content-Type is application/json
	Params  map[string]string
}

// Response is mutated in place by middleware and handlers, then
// serialized exactly once per connection.
type Response struct {
	Status  int
	Headers HTTPHeader
	Body    []byte
}

func NewResponse() *Response {
	return &Response{
		Status: 200,
		Headers: HTTPHeader{
			"Server":     serverName,
			"Connection": "close",
		},
	}
}

func errorResponse(status int, msg string) *Response {
	res := NewResponse()
	res.Status = status
	res.Headers["Content-Type"] = "text/plain"
	res.Body = []byte(fmt.Sprintf("%d %s: %s", status, reasonPhrase(status), msg))
	return res
}

var reasonPhrases = map[int]string{
	200: "OK",
	201: "Created",
	204: "No Content",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
	501: "Not Implemented",
	503: "Service Unavailable",
}

func reasonPhrase(status int) string {
	if p, ok := reasonPhrases[status]; ok {
		return p
	}
	return "Unknown"
}
