package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/model"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrPromoCodeExists   = errors.New("promo code already exists")
	ErrPromoInactive     = errors.New("promo code is no longer active")
	ErrPromoExpired      = errors.New("promo code has expired")
	ErrPromoLimitReached = errors.New("promo code usage limit reached")
	ErrBadDiscountType   = errors.New("discount type must be percentage or fixed")
)

type PromoService interface {
	Create(ctx context.Context, req *dto.PromoCreateRequest) (*model.PromoCode, error)
	List(ctx context.Context) ([]*model.PromoCode, error)
	Update(ctx context.Context, promoID string, req *dto.PromoCreateRequest) (*model.PromoCode, error)
	Delete(ctx context.Context, promoID string) error

	// Validate runs the discount rule ladder against the order total. It
	// never mutates usage counters.
	Validate(ctx context.Context, code string, orderTotal float64) (*dto.PromoValidateResponse, error)

	// Apply burns one usage slot. The increment is conditional on remaining
	// headroom, so it stays correct even when two checkouts validated the
	// same slot.
	Apply(ctx context.Context, code string) error
}

type promoServiceImpl struct {
	promoRepo repository.PromoRepository
	now       func() time.Time
}

func NewPromoService(promoRepo repository.PromoRepository) PromoService {
	return &promoServiceImpl{
		promoRepo: promoRepo,
		now:       time.Now,
	}
}

func (s *promoServiceImpl) Create(ctx context.Context, req *dto.PromoCreateRequest) (*model.PromoCode, error) {
	discountType := model.DiscountType(req.DiscountType)
	if discountType != model.DiscountPercentage && discountType != model.DiscountFixed {
		return nil, ErrBadDiscountType
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	_, err := s.promoRepo.FindByCode(ctx, code)
	if err == nil {
		return nil, ErrPromoCodeExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing promo code: %w", err)
	}

	promo := &model.PromoCode{
		ID:            uuid.NewString(),
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: req.DiscountValue,
		Description:   req.Description,
		ExpiryDate:    req.ExpiryDate,
		UsageLimit:    req.UsageLimit,
		IsActive:      true,
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("store promo code: %w", err)
	}

	log.Println("promo code created:", promo.Code)
	return promo, nil
}

func (s *promoServiceImpl) List(ctx context.Context) ([]*model.PromoCode, error) {
	return s.promoRepo.FindAll(ctx)
}

func (s *promoServiceImpl) Update(ctx context.Context, promoID string, req *dto.PromoCreateRequest) (*model.PromoCode, error) {
	discountType := model.DiscountType(req.DiscountType)
	if discountType != model.DiscountPercentage && discountType != model.DiscountFixed {
		return nil, ErrBadDiscountType
	}

	updates := map[string]interface{}{
		"code":           strings.ToUpper(strings.TrimSpace(req.Code)),
		"discount_type":  discountType,
		"discount_value": req.DiscountValue,
		"description":    req.Description,
		"expiry_date":    req.ExpiryDate,
		"usage_limit":    req.UsageLimit,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.promoRepo.Update(ctx, promoID, updates); err != nil {
		return nil, err
	}

	return s.promoRepo.FindByID(ctx, promoID)
}

func (s *promoServiceImpl) Delete(ctx context.Context, promoID string) error {
	return s.promoRepo.Delete(ctx, promoID)
}

func (s *promoServiceImpl) Validate(ctx context.Context, code string, orderTotal float64) (*dto.PromoValidateResponse, error) {
	promo, err := s.promoRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !promo.IsActive {
		return nil, ErrPromoInactive
	}
	if promo.ExpiryDate != nil && s.now().After(*promo.ExpiryDate) {
		return nil, ErrPromoExpired
	}
	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return nil, ErrPromoLimitReached
	}

	discountAmount, newTotal := computeDiscount(promo, orderTotal)

	return &dto.PromoValidateResponse{
		Valid:          true,
		Code:           promo.Code,
		DiscountType:   string(promo.DiscountType),
		DiscountValue:  promo.DiscountValue,
		DiscountAmount: discountAmount,
		NewTotal:       newTotal,
		Description:    promo.Description,
	}, nil
}

// computeDiscount clamps the discount to the order total and rounds both
// figures to cents, half up.
func computeDiscount(promo *model.PromoCode, orderTotal float64) (float64, float64) {
	total := decimal.NewFromFloat(orderTotal)

	var raw decimal.Decimal
	if promo.DiscountType == model.DiscountPercentage {
		raw = total.
			Mul(decimal.NewFromFloat(promo.DiscountValue)).
			Div(decimal.NewFromInt(100))
	} else {
		raw = decimal.NewFromFloat(promo.DiscountValue)
	}

	if raw.GreaterThan(total) {
		raw = total
	}

	discount := raw.Round(2)
	newTotal := total.Sub(discount).Round(2)

	return discount.InexactFloat64(), newTotal.InexactFloat64()
}

func (s *promoServiceImpl) Apply(ctx context.Context, code string) error {
	rows, err := s.promoRepo.IncrementUsage(ctx, code)
	if err != nil {
		return fmt.Errorf("increment promo usage: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Zero rows: either the code does not exist or the limit is exhausted.
	if _, err := s.promoRepo.FindByCode(ctx, code); err != nil {
		return err
	}
	return ErrPromoLimitReached
}
