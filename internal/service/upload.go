package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const MaxUploadBytes = 5 * 1024 * 1024

var (
	ErrFileTooLarge = errors.New("file too large (max 5MB)")
	ErrBadFileType  = errors.New("invalid file type")
)

var productImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

var galleryImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type StoredImage struct {
	URL      string
	Filename string
}

// UploadService writes browser uploads into the shared upload directory
// under collision-free names and hands back the public /uploads URL.
type UploadService interface {
	SaveProductImage(contentType string, data []byte) (*StoredImage, error)
	SaveGalleryImage(contentType string, data []byte) (*StoredImage, error)
}

type uploadServiceImpl struct {
	uploadDir string
}

func NewUploadService(uploadDir string) UploadService {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("create upload dir:", err)
	}
	return &uploadServiceImpl{
		uploadDir: uploadDir,
	}
}

func (s *uploadServiceImpl) SaveProductImage(contentType string, data []byte) (*StoredImage, error) {
	return s.save(contentType, data, productImageTypes, false)
}

func (s *uploadServiceImpl) SaveGalleryImage(contentType string, data []byte) (*StoredImage, error) {
	return s.save(contentType, data, galleryImageTypes, true)
}

func (s *uploadServiceImpl) save(contentType string, data []byte, allowed map[string]string, thumbnail bool) (*StoredImage, error) {
	ext, ok := allowed[strings.ToLower(contentType)]
	if !ok {
		return nil, ErrBadFileType
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	filename := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	path := filepath.Join(s.uploadDir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload %s: %w", filename, err)
	}

	if thumbnail {
		// Thumbnails are best effort; webp is not decodable here and is
		// simply skipped.
		if err := s.writeThumbnail(filename, data); err != nil {
			log.Printf("thumbnail for %s: %v", filename, err)
		}
	}

	return &StoredImage{
		URL:      "/uploads/" + filename,
		Filename: filename,
	}, nil
}

func (s *uploadServiceImpl) writeThumbnail(filename string, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	thumb := resize.Resize(800, 0, img, resize.Lanczos3)
	thumbPath := filepath.Join(s.uploadDir, "thumb_"+strings.TrimSuffix(filename, filepath.Ext(filename))+".jpg")

	out, err := os.Create(thumbPath)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 80})
}
