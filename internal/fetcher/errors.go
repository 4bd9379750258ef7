package fetcher

import "fmt"

type ErrorKind int

const (
	UnsupportedScheme ErrorKind = iota + 1
	TransportError
	BadStatus
	FileSystemError
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedScheme:
		return "unsupported scheme"
	case TransportError:
		return "transport error"
	case BadStatus:
		return "bad status"
	case FileSystemError:
		return "file system error"
	default:
		return "unknown"
	}
}

// FetchError describes why a single download failed. StatusCode is set only for BadStatus.
type FetchError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case BadStatus:
		return fmt.Sprintf("failed to download image: %s - status code: %d", e.URL, e.StatusCode)
	case UnsupportedScheme:
		return fmt.Sprintf("unsupported url %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
