package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/a.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/c", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		w.Write([]byte("webp-bytes"))
	})
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("hello"))
	})
	mux.HandleFunc("/bare", func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write([]byte("raw"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("/truncated", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", "1000")
		w.Write([]byte("short"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchExtensionFromContentType(t *testing.T) {
	server := newImageServer(t)
	f := New(server.Client())

	tests := []struct {
		name     string
		path     string
		baseName string
		file     string
		body     string
	}{
		{"PNG", "/a.png", "Alpha", "Alpha.png", "png-bytes"},
		{"WebP without URL extension", "/c", "Gamma", "Gamma.webp", "webp-bytes"},
		{"Non-image type", "/text", "Notes", "Notes", "hello"},
		{"Missing content type", "/bare", "Raw", "Raw", "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			result, err := f.Fetch(context.Background(), server.URL+tt.path, dir, tt.baseName)
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}

			expected := filepath.Join(dir, tt.file)
			if result.Path != expected {
				t.Errorf("Fetch() path = %s, want %s", result.Path, expected)
			}

			data, err := os.ReadFile(expected)
			if err != nil {
				t.Fatalf("Failed to read downloaded file: %v", err)
			}
			if string(data) != tt.body {
				t.Errorf("file content = %q, want %q", data, tt.body)
			}
			if result.Size != int64(len(tt.body)) {
				t.Errorf("Fetch() size = %d, want %d", result.Size, len(tt.body))
			}

			entries, _ := os.ReadDir(dir)
			if len(entries) != 1 {
				t.Errorf("directory holds %d entries, want 1", len(entries))
			}
		})
	}
}

func TestFetchOverwritesExistingFile(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "Alpha.png")
	if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := New(nil).Fetch(context.Background(), server.URL+"/a.png", dir, "Alpha"); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	data, _ := os.ReadFile(target)
	if string(data) != "png-bytes" {
		t.Errorf("file content = %q, want %q", data, "png-bytes")
	}
}

func TestFetchBadStatus(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()
	url := server.URL + "/missing"

	existing := filepath.Join(dir, "Delta")
	if err := os.WriteFile(existing, []byte("keep"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := New(server.Client()).Fetch(context.Background(), url, dir, "Delta")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Fetch() error = %v, want *FetchError", err)
	}
	if fetchErr.Kind != BadStatus || fetchErr.StatusCode != http.StatusNotFound || fetchErr.URL != url {
		t.Errorf("Fetch() error = %+v, want BadStatus 404 for %s", fetchErr, url)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "keep" {
		t.Errorf("existing file was modified: %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/gone.png"
	server.Close()

	dir := t.TempDir()
	_, err := New(nil).Fetch(context.Background(), url, dir, "Gone")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Kind != TransportError {
		t.Fatalf("Fetch() error = %v, want transport error", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory holds %d entries, want 0", len(entries))
	}
}

func TestFetchTruncatedBodyLeavesNoFile(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()

	_, err := New(server.Client()).Fetch(context.Background(), server.URL+"/truncated", dir, "Short")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Kind != TransportError {
		t.Fatalf("Fetch() error = %v, want transport error", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory holds %d entries after failed transfer, want 0", len(entries))
	}
}

func TestFetchUnsupportedScheme(t *testing.T) {
	tests := []string{
		"ftp://example.com/a.png",
		"file:///etc/passwd",
		"example.com/a.png",
		"https://",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, err := New(nil).Fetch(context.Background(), url, t.TempDir(), "X")
			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) || fetchErr.Kind != UnsupportedScheme {
				t.Errorf("Fetch(%s) error = %v, want unsupported scheme", url, err)
			}
		})
	}
}

func TestFetchFileSystemError(t *testing.T) {
	server := newImageServer(t)
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := New(server.Client()).Fetch(context.Background(), server.URL+"/a.png", dir, "Alpha")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Kind != FileSystemError {
		t.Fatalf("Fetch() error = %v, want file system error", err)
	}
	if fetchErr.URL != server.URL+"/a.png" {
		t.Errorf("FetchError.URL = %s, want %s", fetchErr.URL, server.URL+"/a.png")
	}
}

func TestFetchSanitizesName(t *testing.T) {
	server := newImageServer(t)
	parent := t.TempDir()
	dir := filepath.Join(parent, "out")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	result, err := New(server.Client()).Fetch(context.Background(), server.URL+"/a.png", dir, "../escape")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if filepath.Dir(result.Path) != dir {
		t.Errorf("Fetch() wrote %s outside %s", result.Path, dir)
	}
	if filepath.Base(result.Path) != "_escape.png" {
		t.Errorf("Fetch() file = %s, want _escape.png", filepath.Base(result.Path))
	}
}
