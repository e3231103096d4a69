package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"gorm.io/gorm"
)

func newPromoService(t *testing.T) PromoService {
	t.Helper()
	return NewPromoService(repository.NewPromoRepository(newTestDB(t)))
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestValidatePercentageDiscount(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "save20",
		DiscountType:  "percentage",
		DiscountValue: 20,
	})
	if err != nil {
		t.Fatal(err)
	}

	// lookup is case-insensitive
	result, err := svc.Validate(ctx, "Save20", 100)
	if err != nil {
		t.Fatal(err)
	}

	if result.Code != "SAVE20" {
		t.Errorf("code = %q, want SAVE20", result.Code)
	}
	if result.DiscountAmount != 20 {
		t.Errorf("discountAmount = %v, want 20", result.DiscountAmount)
	}
	if result.NewTotal != 80 {
		t.Errorf("newTotal = %v, want 80", result.NewTotal)
	}
}

func TestValidateRoundsToCents(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "FIFTEEN",
		DiscountType:  "percentage",
		DiscountValue: 15,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 15% of 34.99 is 5.2485, which rounds half up to 5.25
	result, err := svc.Validate(ctx, "FIFTEEN", 34.99)
	if err != nil {
		t.Fatal(err)
	}

	if result.DiscountAmount != 5.25 {
		t.Errorf("discountAmount = %v, want 5.25", result.DiscountAmount)
	}
	if result.NewTotal != 29.74 {
		t.Errorf("newTotal = %v, want 29.74", result.NewTotal)
	}
}

func TestValidateFixedDiscountClamped(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "BIGOFF",
		DiscountType:  "fixed",
		DiscountValue: 50,
	})
	if err != nil {
		t.Fatal(err)
	}

	result, err := svc.Validate(ctx, "BIGOFF", 30)
	if err != nil {
		t.Fatal(err)
	}

	if result.DiscountAmount != 30 {
		t.Errorf("discountAmount = %v, want clamp to order total 30", result.DiscountAmount)
	}
	if result.NewTotal != 0 {
		t.Errorf("newTotal = %v, want 0", result.NewTotal)
	}
}

func TestValidateUnknownCode(t *testing.T) {
	svc := newPromoService(t)

	_, err := svc.Validate(context.Background(), "NOPE", 100)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}

func TestValidateInactiveCode(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "PAUSED",
		DiscountType:  "fixed",
		DiscountValue: 5,
		IsActive:      boolPtr(false),
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Validate(ctx, "PAUSED", 100); !errors.Is(err, ErrPromoInactive) {
		t.Errorf("err = %v, want ErrPromoInactive", err)
	}
}

func TestValidateExpiredCode(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	expiry := time.Now().Add(time.Hour)
	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "SUMMER",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ExpiryDate:    &expiry,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Validate(ctx, "SUMMER", 100); err != nil {
		t.Fatalf("before expiry: %v", err)
	}

	svc.(*promoServiceImpl).now = func() time.Time {
		return time.Now().Add(2 * time.Hour)
	}

	if _, err := svc.Validate(ctx, "SUMMER", 100); !errors.Is(err, ErrPromoExpired) {
		t.Errorf("err = %v, want ErrPromoExpired", err)
	}
}

func TestApplyBurnsUsageSlots(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "SAVE20",
		DiscountType:  "percentage",
		DiscountValue: 20,
		UsageLimit:    intPtr(1),
	})
	if err != nil {
		t.Fatal(err)
	}

	result, err := svc.Validate(ctx, "SAVE20", 100)
	if err != nil {
		t.Fatal(err)
	}
	if result.DiscountAmount != 20 || result.NewTotal != 80 {
		t.Errorf("got %v/%v, want 20/80", result.DiscountAmount, result.NewTotal)
	}

	if err := svc.Apply(ctx, "SAVE20"); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Validate(ctx, "SAVE20", 100); !errors.Is(err, ErrPromoLimitReached) {
		t.Errorf("validate after exhaustion: err = %v, want ErrPromoLimitReached", err)
	}

	// apply re-checks the limit at increment time
	if err := svc.Apply(ctx, "SAVE20"); !errors.Is(err, ErrPromoLimitReached) {
		t.Errorf("apply after exhaustion: err = %v, want ErrPromoLimitReached", err)
	}
}

func TestApplyUnknownCode(t *testing.T) {
	svc := newPromoService(t)

	if err := svc.Apply(context.Background(), "MISSING"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}

func TestApplyWithoutLimit(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "FOREVER",
		DiscountType:  "fixed",
		DiscountValue: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if err := svc.Apply(ctx, "FOREVER"); err != nil {
			t.Fatalf("apply %d: %v", i+1, err)
		}
	}

	promos, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(promos) != 1 || promos[0].UsedCount != 5 {
		t.Errorf("usedCount = %d, want 5", promos[0].UsedCount)
	}
}

func TestCreateDuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc := newPromoService(t)

	if _, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "save20",
		DiscountType:  "fixed",
		DiscountValue: 5,
	}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Create(ctx, &dto.PromoCreateRequest{
		Code:          "SAVE20",
		DiscountType:  "fixed",
		DiscountValue: 5,
	})
	if !errors.Is(err, ErrPromoCodeExists) {
		t.Errorf("err = %v, want ErrPromoCodeExists", err)
	}
}

func TestCreateRejectsUnknownDiscountType(t *testing.T) {
	svc := newPromoService(t)

	_, err := svc.Create(context.Background(), &dto.PromoCreateRequest{
		Code:          "WEIRD",
		DiscountType:  "bogo",
		DiscountValue: 1,
	})
	if !errors.Is(err, ErrBadDiscountType) {
		t.Errorf("err = %v, want ErrBadDiscountType", err)
	}
}

func TestUpdateMissingPromo(t *testing.T) {
	svc := newPromoService(t)

	_, err := svc.Update(context.Background(), "no-such-id", &dto.PromoCreateRequest{
		Code:          "X",
		DiscountType:  "fixed",
		DiscountValue: 1,
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}

func TestDeleteMissingPromo(t *testing.T) {
	svc := newPromoService(t)

	if err := svc.Delete(context.Background(), "no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}
