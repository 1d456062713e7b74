package helm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "myapp-0.1.0.tgz")
	require.NoError(t, os.WriteFile(archive, []byte("chart archive contents"), 0o644))

	var (
		requestMethod string
		requestPath   string
		requestBody   []byte
		authUser      string
		authPass      string
		authProvided  bool
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestMethod = r.Method
		requestPath = r.URL.Path
		authUser, authPass, authProvided = r.BasicAuth()

		var err error
		requestBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	h := New(t.TempDir())

	require.NoError(t, h.Upload(context.Background(), server.URL+"/charts", "publisher", "s3cret", archive))

	assert.Equal(t, http.MethodPut, requestMethod)
	assert.Equal(t, "/charts/myapp-0.1.0.tgz", requestPath)
	assert.Equal(t, "chart archive contents", string(requestBody))
	assert.True(t, authProvided)
	assert.Equal(t, "publisher", authUser)
	assert.Equal(t, "s3cret", authPass)
}

func TestUpload_NoCredentials(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "myapp-0.1.0.tgz")
	require.NoError(t, os.WriteFile(archive, []byte("contents"), 0o644))

	var authProvided bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, authProvided = r.BasicAuth()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h := New(t.TempDir())

	require.NoError(t, h.Upload(context.Background(), server.URL, "", "", archive))
	assert.False(t, authProvided)
}

func TestUpload_Failures(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "myapp-0.1.0.tgz")
	require.NoError(t, os.WriteFile(archive, []byte("contents"), 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	h := New(t.TempDir())

	tests := []struct {
		name        string
		repoURL     string
		archive     string
		expectedErr string
	}{
		{
			name:        "Missing archive",
			repoURL:     server.URL,
			archive:     filepath.Join(t.TempDir(), "missing.tgz"),
			expectedErr: "opening chart archive:",
		},
		{
			name:        "Server error",
			repoURL:     server.URL,
			archive:     archive,
			expectedErr: "unexpected status code: 500",
		},
		{
			name:        "Unreachable repository",
			repoURL:     "http://127.0.0.1:1",
			archive:     archive,
			expectedErr: "executing request:",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := h.Upload(context.Background(), test.repoURL, "", "", test.archive)
			require.Error(t, err)
			assert.ErrorContains(t, err, test.expectedErr)
		})
	}
}
