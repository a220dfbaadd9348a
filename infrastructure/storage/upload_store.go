package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/internal/config"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

// allowed upload extensions, matched case-insensitively
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
}

// UploadStore saves uploaded listing photos on local disk under
// date-partitioned directories with collision-free names.
type UploadStore struct {
	baseDir string
}

func NewUploadStore(cfg *config.Config) (*UploadStore, error) {
	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating upload directory")
	}

	return &UploadStore{baseDir: cfg.Storage.UploadDir}, nil
}

// SaveUpload persists one multipart file and returns its path and MIME type.
func (s *UploadStore) SaveUpload(fileHeader *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mimeType, ok := allowedExtensions[ext]
	if !ok {
		return "", "", errors.Wrapf(ErrUnsupportedImageType, "extension %q", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", errors.Wrap(err, "opening uploaded file")
	}
	defer src.Close()

	now := time.Now().UTC()
	dir := filepath.Join(s.baseDir, fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", errors.Wrap(err, "creating date directory")
	}

	path := filepath.Join(dir, uuid.NewString()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", errors.Wrap(err, "creating destination file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", errors.Wrap(err, "writing uploaded file")
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"size": fileHeader.Size,
	}).Debug("storage: upload saved")

	return path, mimeType, nil
}

// Read returns the raw bytes and MIME type of a previously stored image.
func (s *UploadStore) Read(path string) ([]byte, string, error) {
	mimeType, ok := allowedExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, "", errors.Wrapf(ErrUnsupportedImageType, "extension %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "reading stored image")
	}

	return data, mimeType, nil
}

// Remove deletes a stored image, ignoring files that are already gone.
func (s *UploadStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing stored image")
	}
	return nil
}
