package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"imagefetch/internal/models"
)

const filePermissions = 0644

type Fetcher struct {
	client *http.Client
}

// New returns a Fetcher using client, or a client with no timeout when nil.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{client: client}
}

// Fetch downloads rawURL into destDir as <SanitizeName(baseName)><ext>. The body
// is written to a temporary file first and renamed into place only after it was
// fully received, so a failed transfer never leaves a partial file behind.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, destDir, baseName string) (*models.DownloadResult, error) {
	if err := checkScheme(rawURL); err != nil {
		return nil, &FetchError{Kind: UnsupportedScheme, URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: TransportError, URL: rawURL, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: TransportError, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Kind: BadStatus, URL: rawURL, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	target := filepath.Join(destDir, SanitizeName(baseName)+ExtensionFor(contentType))

	size, fetchErr := writeAtomic(target, resp.Body)
	if fetchErr != nil {
		fetchErr.URL = rawURL
		return nil, fetchErr
	}

	return &models.DownloadResult{
		Path:        target,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func checkScheme(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func writeAtomic(target string, body io.Reader) (int64, *FetchError) {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".imagefetch-*.part")
	if err != nil {
		return 0, &FetchError{Kind: FileSystemError, Err: fmt.Errorf("failed to create file: %w", err)}
	}
	tmpPath := tmp.Name()

	fail := func(kind ErrorKind, err error) (int64, *FetchError) {
		tmp.Close()
		os.Remove(tmpPath)
		return 0, &FetchError{Kind: kind, Err: err}
	}

	w := &trackingWriter{w: tmp}
	size, err := io.Copy(w, body)
	if err != nil {
		if w.err != nil {
			return fail(FileSystemError, fmt.Errorf("failed to write file: %w", err))
		}
		return fail(TransportError, fmt.Errorf("failed to read response body: %w", err))
	}

	if err := tmp.Chmod(filePermissions); err != nil {
		return fail(FileSystemError, fmt.Errorf("failed to set file mode: %w", err))
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, &FetchError{Kind: FileSystemError, Err: fmt.Errorf("failed to close file: %w", err)}
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return 0, &FetchError{Kind: FileSystemError, Err: fmt.Errorf("failed to rename file: %w", err)}
	}

	return size, nil
}

// trackingWriter remembers write errors so io.Copy failures can be attributed
// to the disk rather than the network.
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		t.err = err
	}
	return n, err
}
