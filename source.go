package mp3frame

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// ErrInvalidInput means the location is empty or has an unsupported scheme.
var ErrInvalidInput = errors.New("First argument must be a path or HTTP URL")

// Open returns a reader positioned at the first byte of location, which is a
// filesystem path, a file:// URL or an http(s):// URL.
func Open(location string) (io.ReadCloser, error) {
	if location == "" {
		return nil, ErrInvalidInput
	}

	if !strings.Contains(location, "://") {
		return openFile(location)
	}

	input, err := url.Parse(location)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch input.Scheme {
	case "http", "https":
		return openHTTP(input)
	case "file":
		return openFile(input.Path)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidInput, input.Scheme)
	}
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	return f, nil
}

func openHTTP(location *url.URL) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", location.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", location, resp.Status)
	}

	return resp.Body, nil
}
