package checksum

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256URL(t *testing.T) {
	tests := []struct {
		name        string
		setupServer func() *httptest.Server
		wantErr     bool
		wantDigest  string
	}{
		{
			name: "small body",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					w.Write([]byte("tarball content"))
				}))
			},
			wantDigest: hexSum([]byte("tarball content")),
		},
		{
			name: "not found",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}))
			},
			wantErr: true,
		},
		{
			name: "server error",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
			},
			wantErr: true,
		},
		{
			name: "empty body",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))
			},
			wantDigest: hexSum(nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tt.setupServer()
			defer server.Close()

			digest, err := SHA256URL(context.Background(), server.Client(), server.URL)
			if tt.wantErr {
				require.Error(t, err)
				var dlErr *DownloadError
				assert.ErrorAs(t, err, &dlErr)
				assert.Equal(t, server.URL, dlErr.URL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDigest, digest)
		})
	}
}

// A body larger than one chunk must hash identically to the same bytes
// hashed as a single block.
func TestSHA256URLMultiChunk(t *testing.T) {
	body := bytes.Repeat([]byte("0123456789abcdef"), 3*chunkSize/16)
	require.Greater(t, len(body), chunkSize)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer server.Close()

	digest, err := SHA256URL(context.Background(), server.Client(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, hexSum(body), digest)
}

func TestSHA256URLTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	_, err := SHA256URL(context.Background(), nil, server.URL)
	require.Error(t, err)
	var dlErr *DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.ErrorIs(t, err, dlErr.Err)
}

func TestSHA256URLCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("never hashed"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SHA256URL(ctx, server.Client(), server.URL)
	require.Error(t, err)
	var dlErr *DownloadError
	assert.ErrorAs(t, err, &dlErr)
}

func hexSum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
