package services

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// pngFileHeader builds a multipart file header carrying an encoded PNG of the
// given dimensions
func pngFileHeader(t *testing.T, name string, width, height int) *multipart.FileHeader {
	t.Helper()

	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("image", name)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(img.Bytes()); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	writer.Close()

	reader := multipart.NewReader(&form, writer.Boundary())
	parsed, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("Failed to parse form: %v", err)
	}
	files := parsed.File["image"]
	if len(files) != 1 {
		t.Fatalf("Parsed form has %d files, want 1", len(files))
	}
	return files[0]
}

func TestSaveImageRejectsUnsupportedExtension(t *testing.T) {
	service := NewUploadService(t.TempDir())

	if _, err := service.SaveImage(pngFileHeader(t, "payload.exe", 10, 10), "projects", 800, 600); err == nil {
		t.Error("SaveImage accepted an unsupported extension")
	}
}

func TestSaveImageStoresUnderSubdir(t *testing.T) {
	root := t.TempDir()
	service := NewUploadService(root)

	relPath, err := service.SaveImage(pngFileHeader(t, "photo.png", 100, 100), "projects", ProjectImageMaxWidth, ProjectImageMaxHeight)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	if !strings.HasPrefix(relPath, "projects/") {
		t.Errorf("Relative path = %q, want projects/ prefix", relPath)
	}
	if !strings.HasSuffix(relPath, ".png") {
		t.Errorf("Relative path = %q, want .png suffix", relPath)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(relPath))); err != nil {
		t.Errorf("Stored file missing: %v", err)
	}
}

func TestSaveImageResizesOversizedImages(t *testing.T) {
	root := t.TempDir()
	service := NewUploadService(root)

	relPath, err := service.SaveImage(pngFileHeader(t, "big.png", 2000, 1500), "blog", BlogImageMaxWidth, BlogImageMaxHeight)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	stored, err := imaging.Open(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("Failed to reopen stored image: %v", err)
	}
	bounds := stored.Bounds()
	if bounds.Dx() > BlogImageMaxWidth || bounds.Dy() > BlogImageMaxHeight {
		t.Errorf("Stored image is %dx%d, want within %dx%d",
			bounds.Dx(), bounds.Dy(), BlogImageMaxWidth, BlogImageMaxHeight)
	}
}

func TestSaveImageKeepsSmallImagesAsIs(t *testing.T) {
	root := t.TempDir()
	service := NewUploadService(root)

	relPath, err := service.SaveImage(pngFileHeader(t, "small.png", 120, 80), "projects", ProjectImageMaxWidth, ProjectImageMaxHeight)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	stored, err := imaging.Open(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("Failed to reopen stored image: %v", err)
	}
	bounds := stored.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("Stored image is %dx%d, want 120x80 unchanged", bounds.Dx(), bounds.Dy())
	}
}

func TestRemoveToleratesMissingFiles(t *testing.T) {
	service := NewUploadService(t.TempDir())

	if err := service.Remove("projects/never-existed.png"); err != nil {
		t.Errorf("Remove on a missing file = %v, want nil", err)
	}
	if err := service.Remove(""); err != nil {
		t.Errorf("Remove with empty path = %v, want nil", err)
	}
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	root := t.TempDir()
	service := NewUploadService(root)

	relPath, err := service.SaveImage(pngFileHeader(t, "photo.png", 50, 50), "projects", ProjectImageMaxWidth, ProjectImageMaxHeight)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	if err := service.Remove(relPath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(relPath))); !os.IsNotExist(err) {
		t.Errorf("File still present after Remove, err = %v", err)
	}
}
