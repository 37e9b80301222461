package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Per-entity maximum image dimensions
const (
	ProjectImageMaxWidth  = 800
	ProjectImageMaxHeight = 600

	BlogImageMaxWidth  = 800
	BlogImageMaxHeight = 400

	CertificateImageMaxWidth  = 800
	CertificateImageMaxHeight = 600
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// UploadService stores uploaded images under the configured upload root,
// partitioned by entity type subdirectory
type UploadService struct {
	root string
}

// NewUploadService creates a new upload service rooted at dir
func NewUploadService(dir string) *UploadService {
	return &UploadService{root: dir}
}

// Root returns the upload root directory
func (u *UploadService) Root() string {
	return u.root
}

// SaveImage decodes an uploaded image, constrains it to the given maximum
// dimensions and writes it under root/subdir with a generated filename. It
// returns the stored path relative to the upload root.
func (u *UploadService) SaveImage(file *multipart.FileHeader, subdir string, maxWidth, maxHeight int) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Downscale only, small images are stored as-is
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	dir := filepath.Join(u.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + ext
	if err := imaging.Save(img, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// Remove deletes a stored image by its relative path. Missing files are not
// an error.
func (u *UploadService) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(u.root, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
