package repository

import (
	"context"
	"database/sql"

	"github.com/blastmusic247/blast-gear-full/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	FindByID(ctx context.Context, imageID string) (*model.GalleryImage, error)
	FindAll(ctx context.Context) ([]*model.GalleryImage, error)
	MaxSortOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, imageID string, updates map[string]interface{}) error
	Delete(ctx context.Context, imageID string) error
}

type galleryRepoImpl struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepoImpl{
		db: db,
	}
}

func (r *galleryRepoImpl) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepoImpl) FindByID(ctx context.Context, imageID string) (*model.GalleryImage, error) {
	var image model.GalleryImage
	err := r.db.WithContext(ctx).
		Where("id = ?", imageID).
		First(&image).Error

	if err != nil {
		return nil, err
	}

	return &image, nil
}

func (r *galleryRepoImpl) FindAll(ctx context.Context) ([]*model.GalleryImage, error) {
	var images []*model.GalleryImage
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&images).
		Error

	if err != nil {
		return nil, err
	}

	return images, nil
}

func (r *galleryRepoImpl) MaxSortOrder(ctx context.Context) (int, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).Model(&model.GalleryImage{}).
		Select("MAX(sort_order)").
		Scan(&max).
		Error

	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64), nil
}

func (r *galleryRepoImpl) Update(ctx context.Context, imageID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.GalleryImage{}).
		Where("id = ?", imageID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *galleryRepoImpl) Delete(ctx context.Context, imageID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", imageID).
		Delete(&model.GalleryImage{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
