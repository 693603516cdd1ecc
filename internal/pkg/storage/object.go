package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ObjectStorage talks to an S3-style object gateway over HTTP and hands out
// absolute URLs (enterprise mode).
type ObjectStorage struct {
	baseURL   string
	client    *http.Client
	canDelete bool
}

func NewObjectStorage(baseURL string, canDelete bool) *ObjectStorage {
	return &ObjectStorage{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 30 * time.Second},
		canDelete: canDelete,
	}
}

func (s *ObjectStorage) objectURL(path string) string {
	// Absolute references pass through untouched so both reference shapes
	// round-trip.
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return s.baseURL + "/" + strings.TrimLeft(url.PathEscape(path), "/")
}

func (s *ObjectStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	target := s.objectURL(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, file)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload object: gateway returned %s", resp.Status)
	}

	// Enterprise mode hands out the direct URL.
	return target, nil
}

func (s *ObjectStorage) Delete(ctx context.Context, ref string) error {
	if !s.canDelete {
		return fmt.Errorf("object gateway does not allow direct deletion")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(ref), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil // Already deleted
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete object: gateway returned %s", resp.Status)
	}

	return nil
}

func (s *ObjectStorage) GetURL(ctx context.Context, ref string, expiry time.Duration) (string, error) {
	return s.objectURL(ref), nil
}

func (s *ObjectStorage) Exists(ctx context.Context, ref string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.objectURL(ref), nil)
	if err != nil {
		return false, fmt.Errorf("build head request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("head object: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

func (s *ObjectStorage) CanDelete() bool {
	return s.canDelete
}
