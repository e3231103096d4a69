package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()
	return NewCatalogService(repository.NewProductRepository(newTestDB(t)))
}

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestPatchAppliesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	created, err := svc.Create(ctx, &dto.ProductCreateRequest{
		Name:        "Test Tee",
		Description: "A tee",
		Price:       30,
		Sizes:       []string{"M", "L"},
		Category:    "vintage",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !created.InStock {
		t.Error("InStock should default to true")
	}

	patched, err := svc.Patch(ctx, created.ID, &dto.ProductPatch{
		Price:   floatPtr(25.5),
		InStock: boolPtr(false),
	})
	if err != nil {
		t.Fatal(err)
	}

	if patched.Price != 25.5 {
		t.Errorf("price = %v, want 25.5", patched.Price)
	}
	if patched.InStock {
		t.Error("InStock should be false after patch")
	}
	if patched.Name != "Test Tee" {
		t.Errorf("name = %q, should be untouched", patched.Name)
	}
	if len(patched.Sizes) != 2 {
		t.Errorf("sizes = %v, should be untouched", patched.Sizes)
	}
}

func TestPatchWithoutFieldsReturnsProduct(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	created, err := svc.Create(ctx, &dto.ProductCreateRequest{Name: "Plain", Price: 10})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Patch(ctx, created.ID, &dto.ProductPatch{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Plain" {
		t.Errorf("name = %q, want Plain", got.Name)
	}
}

func TestPatchMissingProduct(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.Patch(context.Background(), "no-such-id", &dto.ProductPatch{
		Name: strPtr("Renamed"),
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}

func TestDeleteMissingProduct(t *testing.T) {
	svc := newCatalogService(t)

	if err := svc.Delete(context.Background(), "no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}

func TestSeedInitialProductsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	if err := svc.SeedInitialProducts(ctx); err != nil {
		t.Fatal(err)
	}
	if err := svc.SeedInitialProducts(ctx); err != nil {
		t.Fatal(err)
	}

	products, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 6 {
		t.Errorf("got %d products after double seed, want 6", len(products))
	}
}
