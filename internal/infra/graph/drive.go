package graph

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pickup-scheduler/internal/infra"
	"pickup-scheduler/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// Fetch downloads a file from the site's default document library.
// A missing file yields a KindNotFound repository error.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	siteID, err := c.SiteID(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodGet, contentPath(siteID, path), nil, "")
	if err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to download "+path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, infra.WrapRepoErr(c.logger, infra.KindNotFound, "file not found: "+path, readAPIError(resp))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to download "+path, readAPIError(resp))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to read "+path, err)
	}
	return data, nil
}

// Store uploads data, replacing the file. A file locked by another editor is
// retried with exponential backoff; running out of attempts yields KindWriteConflict.
func (c *Client) Store(ctx context.Context, path string, data []byte) error {
	siteID, err := c.SiteID(ctx)
	if err != nil {
		return err
	}

	attempt := 0
	op := func() error {
		attempt++
		resp, err := c.do(ctx, http.MethodPut, contentPath(siteID, path), bytes.NewReader(data), "application/octet-stream")
		if err != nil {
			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		apiErr := readAPIError(resp)
		if isLocked(apiErr) {
			return apiErr
		}
		return backoff.Permanent(apiErr)
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("file is locked, retrying upload",
			"path", path,
			"attempt", attempt,
			"wait", wait,
			"error", err.Error())
	}

	err = backoff.RetryNotify(op, backoff.WithContext(c.uploadBackOff(), ctx), notify)
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errs.As(err, &apiErr) && isLocked(apiErr) {
		return infra.WrapRepoErr(c.logger, infra.KindWriteConflict, "file still locked after retries: "+path, err)
	}
	return infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to upload "+path, err)
}

// uploadBackOff waits UploadBackoff, then doubles: 1s, 2s, 4s, 8s for the defaults.
func (c *Client) uploadBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.UploadBackoff
	if b.InitialInterval <= 0 {
		b.InitialInterval = time.Second
	}
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = 64 * b.InitialInterval
	b.MaxElapsedTime = 0
	b.Reset()

	attempts := c.cfg.UploadAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithMaxRetries(b, uint64(attempts-1))
}

func isLocked(e *APIError) bool {
	if e == nil {
		return false
	}
	if e.Status == http.StatusLocked {
		return true
	}
	switch e.Code {
	case "resourceLocked", "notAllowed":
		return true
	}
	return strings.Contains(strings.ToLower(e.Message), "locked")
}

func contentPath(siteID, filePath string) string {
	return "/sites/" + siteID + "/drive/root:" + escapePath(filePath) + ":/content"
}

func escapePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
