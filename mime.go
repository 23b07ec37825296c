package main

import (
	"path/filepath"
	"strings"
)

// Fixed table rather than mime.TypeByExtension, which consults the
// platform's /etc/mime.types and is not stable across machines.
var mimeTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "application/javascript",
	".json":  "application/json",
	".txt":   "text/plain",
	".xml":   "application/xml",
	".csv":   "text/csv",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".webp":  "image/webp",
	".pdf":   "application/pdf",
	".wasm":  "application/wasm",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

func mimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := mimeTypes[ext]; ok {
		return t
	}
	return "application/octet-stream"
}
