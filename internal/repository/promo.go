package repository

import (
	"context"
	"strings"

	"github.com/blastmusic247/blast-gear-full/internal/model"

	"gorm.io/gorm"
)

type PromoRepository interface {
	Create(ctx context.Context, promo *model.PromoCode) error
	FindByID(ctx context.Context, promoID string) (*model.PromoCode, error)
	FindByCode(ctx context.Context, code string) (*model.PromoCode, error)
	FindAll(ctx context.Context) ([]*model.PromoCode, error)
	Update(ctx context.Context, promoID string, updates map[string]interface{}) error
	Delete(ctx context.Context, promoID string) error
	IncrementUsage(ctx context.Context, code string) (int64, error)
}

type promoRepoImpl struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepoImpl{
		db: db,
	}
}

func (r *promoRepoImpl) Create(ctx context.Context, promo *model.PromoCode) error {
	return r.db.WithContext(ctx).Create(promo).Error
}

func (r *promoRepoImpl) FindByID(ctx context.Context, promoID string) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := r.db.WithContext(ctx).
		Where("id = ?", promoID).
		First(&promo).Error

	if err != nil {
		return nil, err
	}

	return &promo, nil
}

func (r *promoRepoImpl) FindByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&promo).Error

	if err != nil {
		return nil, err
	}

	return &promo, nil
}

func (r *promoRepoImpl) FindAll(ctx context.Context) ([]*model.PromoCode, error) {
	var promos []*model.PromoCode
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&promos).
		Error

	if err != nil {
		return nil, err
	}

	return promos, nil
}

func (r *promoRepoImpl) Update(ctx context.Context, promoID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.PromoCode{}).
		Where("id = ?", promoID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *promoRepoImpl) Delete(ctx context.Context, promoID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", promoID).
		Delete(&model.PromoCode{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementUsage bumps used_count only while the usage limit has headroom,
// so two concurrent checkouts cannot overrun the limit between a validate
// call and an apply call. Returns the number of rows updated.
func (r *promoRepoImpl) IncrementUsage(ctx context.Context, code string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.PromoCode{}).
		Where("code = ?", strings.ToUpper(code)).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Update("used_count", gorm.Expr("used_count + 1"))

	return result.RowsAffected, result.Error
}
