package main

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.txt":      "hello world",
		"blob.bin":   "\x00\x01\x02",
		"index.html": "<h1>home</h1>",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestStaticResolveRoundTrip(t *testing.T) {
	s := NewStaticResolver(newTestRoot(t))
	res, ok := s.Resolve("/a.txt")
	if !ok {
		t.Fatal("expected file to resolve")
	}
	if res.Status != 200 {
		t.Errorf("status = %d", res.Status)
	}
	ExpectEqual(t, "text/plain", res.Headers["Content-Type"])
	ExpectEqual(t, "11", res.Headers["Content-Length"])
	ExpectEqual(t, "hello world", string(res.Body))
}

func TestStaticResolveUnknownExtension(t *testing.T) {
	s := NewStaticResolver(newTestRoot(t))
	res, ok := s.Resolve("/blob.bin")
	if !ok {
		t.Fatal("expected file to resolve")
	}
	ExpectEqual(t, "application/octet-stream", res.Headers["Content-Type"])
}

func TestStaticResolveIndexHTML(t *testing.T) {
	s := NewStaticResolver(newTestRoot(t))
	res, ok := s.Resolve("/")
	if !ok {
		t.Fatal("expected index.html to resolve")
	}
	ExpectEqual(t, "text/html", res.Headers["Content-Type"])
	ExpectEqual(t, "<h1>home</h1>", string(res.Body))
}

func TestStaticResolveMissing(t *testing.T) {
	s := NewStaticResolver(newTestRoot(t))
	if _, ok := s.Resolve("/nope.txt"); ok {
		t.Error("missing file must not resolve")
	}
}

func TestStaticResolveDirectoryIsNotAFile(t *testing.T) {
	root := newTestRoot(t)
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	s := NewStaticResolver(root)
	if _, ok := s.Resolve("/sub"); ok {
		t.Error("directory must not resolve")
	}
}

func TestStaticResolveTraversalStaysInRoot(t *testing.T) {
	s := NewStaticResolver(newTestRoot(t))
	// The stripped path is ///etc/passwd under the root, which does not
	// exist there. Alternate encodings are a documented limitation.
	if _, ok := s.Resolve("/../../etc/passwd"); ok {
		t.Error("traversal path must not resolve")
	}
}
