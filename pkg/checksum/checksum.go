// Package checksum computes digests of remote release artifacts.
package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// chunkSize bounds peak memory while hashing large tarballs.
const chunkSize = 1 << 20

// DownloadError indicates the remote artifact could not be fetched or read.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// SHA256URL performs a GET against url and returns the hex-encoded SHA-256
// digest of the response body. The body is streamed through the hash in
// fixed-size chunks, so memory use does not grow with artifact size.
// Any transport error, non-2xx status, or body read failure is returned
// as a *DownloadError; nothing is retried.
func SHA256URL(ctx context.Context, client *http.Client, url string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &DownloadError{URL: url, Err: errors.Wrap(err, "failed to create request")}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &DownloadError{URL: url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	h := sha256.New()
	if _, err := io.CopyBuffer(h, resp.Body, make([]byte, chunkSize)); err != nil {
		return "", &DownloadError{URL: url, Err: errors.Wrap(err, "failed to read response body")}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
