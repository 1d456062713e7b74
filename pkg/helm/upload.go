package helm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Upload transfers a packaged chart archive to the chart repository,
// storing it under the archive's own filename.
func (h *Helm) Upload(ctx context.Context, repoURL, username, password, archive string) error {
	uploadURL, err := url.JoinPath(repoURL, filepath.Base(archive))
	if err != nil {
		return fmt.Errorf("building upload url: %w", err)
	}

	zap.S().Infof("Uploading chart archive '%s' to '%s'...", archive, uploadURL)

	file, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("opening chart archive: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("reading chart archive size: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "Uploading chart")

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, io.TeeReader(file, bar))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.ContentLength = info.Size()

	if username != "" && password != "" {
		req.SetBasicAuth(username, password)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
