package repository

import (
	"context"

	"github.com/blastmusic247/blast-gear-full/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
}

type contactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepoImpl{
		db: db,
	}
}

func (r *contactRepoImpl) Create(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
