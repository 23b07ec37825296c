package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
)

// WriteResponse serializes res onto w: status line, headers in sorted key
// order, blank line, body. Content-Length is filled in from the body when
// the handler did not set it.
func WriteResponse(w io.Writer, res *Response) error {
	if _, ok := res.Headers["Content-Length"]; !ok {
		res.Headers["Content-Length"] = strconv.Itoa(len(res.Body))
	}

	if _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", res.Status, reasonPhrase(res.Status)); err != nil {
		return err
	}
	keys := make([]string, 0, len(res.Headers))
	for k := range res.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", k, res.Headers[k]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\r\n"); err != nil {
		return err
	}
	_, err := w.Write(res.Body)
	return err
}
