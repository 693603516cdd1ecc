package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

// FileService handles profile picture uploads for the edit flow.
type FileService interface {
	// UploadAvatar stores a staged profile picture and returns its
	// canonical reference (relative path or absolute URL, backend
	// dependent).
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// DeleteFile removes a previously uploaded file when the backend
	// supports deletion; otherwise it is a no-op.
	DeleteFile(ctx context.Context, ref string) error

	// GetFileURL resolves a stored reference to a fetchable URL.
	GetFileURL(ctx context.Context, ref string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

// UploadAvatar implements FileService.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("avatars", employeeID, newFilename)

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	ref, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return ref, nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, ref string) error {
	if ref == "" || !s.storage.CanDelete() {
		return nil
	}
	return s.storage.Delete(ctx, ref)
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, ref string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, ref, expiry)
}
