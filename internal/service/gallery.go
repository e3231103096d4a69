package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/model"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"github.com/google/uuid"
)

const maxBulkUploadFiles = 10

var ErrTooManyFiles = errors.New("maximum 10 files allowed per upload")

// UploadedFile is one file from a multipart upload, already read into
// memory by the handler.
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type GalleryService interface {
	List(ctx context.Context) ([]*model.GalleryImage, error)
	Create(ctx context.Context, req *dto.GalleryImageCreateRequest) (*model.GalleryImage, error)
	Patch(ctx context.Context, imageID string, patch *dto.GalleryImagePatch) (*model.GalleryImage, error)
	Delete(ctx context.Context, imageID string) error
	BulkUpload(ctx context.Context, files []UploadedFile, defaultAlt string) (*dto.BulkUploadResponse, error)
}

type galleryServiceImpl struct {
	galleryRepo repository.GalleryRepository
	uploads     UploadService
}

func NewGalleryService(galleryRepo repository.GalleryRepository, uploads UploadService) GalleryService {
	return &galleryServiceImpl{
		galleryRepo: galleryRepo,
		uploads:     uploads,
	}
}

func (s *galleryServiceImpl) List(ctx context.Context) ([]*model.GalleryImage, error) {
	return s.galleryRepo.FindAll(ctx)
}

func (s *galleryServiceImpl) Create(ctx context.Context, req *dto.GalleryImageCreateRequest) (*model.GalleryImage, error) {
	image := &model.GalleryImage{
		ID:        uuid.NewString(),
		URL:       req.URL,
		Alt:       req.Alt,
		SortOrder: req.SortOrder,
	}

	if err := s.galleryRepo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("store gallery image: %w", err)
	}

	log.Println("gallery image created:", image.ID)
	return image, nil
}

func (s *galleryServiceImpl) Patch(ctx context.Context, imageID string, patch *dto.GalleryImagePatch) (*model.GalleryImage, error) {
	updates := map[string]interface{}{}
	if patch.Alt != nil {
		updates["alt"] = *patch.Alt
	}
	if patch.SortOrder != nil {
		updates["sort_order"] = *patch.SortOrder
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.galleryRepo.Update(ctx, imageID, updates); err != nil {
		return nil, err
	}

	return s.galleryRepo.FindByID(ctx, imageID)
}

func (s *galleryServiceImpl) Delete(ctx context.Context, imageID string) error {
	return s.galleryRepo.Delete(ctx, imageID)
}

// BulkUpload stores up to ten images in one request. Per-file failures are
// collected and reported; a bad file never aborts the batch.
func (s *galleryServiceImpl) BulkUpload(ctx context.Context, files []UploadedFile, defaultAlt string) (*dto.BulkUploadResponse, error) {
	if len(files) > maxBulkUploadFiles {
		return nil, ErrTooManyFiles
	}

	maxOrder, err := s.galleryRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("read current gallery order: %w", err)
	}

	resp := &dto.BulkUploadResponse{
		Success: true,
		Errors:  []string{},
		Images:  []model.GalleryImage{},
	}

	for idx, file := range files {
		stored, err := s.uploads.SaveGalleryImage(file.ContentType, file.Data)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", file.Filename, err))
			continue
		}

		alt := defaultAlt
		if alt == "" {
			alt = file.Filename
		}

		image := &model.GalleryImage{
			ID:        uuid.NewString(),
			URL:       stored.URL,
			Alt:       alt,
			SortOrder: maxOrder + idx + 1,
		}

		if err := s.galleryRepo.Create(ctx, image); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", file.Filename, err))
			continue
		}

		resp.Images = append(resp.Images, *image)
	}

	resp.Added = len(resp.Images)
	log.Printf("gallery bulk upload: %d added, %d errors", resp.Added, len(resp.Errors))

	return resp, nil
}
