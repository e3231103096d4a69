package service

import (
	"context"
	"fmt"
	"log"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/model"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"github.com/google/uuid"
)

type CatalogService interface {
	List(ctx context.Context) ([]*model.Product, error)
	Get(ctx context.Context, productID string) (*model.Product, error)
	Create(ctx context.Context, req *dto.ProductCreateRequest) (*model.Product, error)
	Patch(ctx context.Context, productID string, patch *dto.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, productID string) error
	SeedInitialProducts(ctx context.Context) error
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
	}
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) Get(ctx context.Context, productID string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, productID)
}

func (s *catalogServiceImpl) Create(ctx context.Context, req *dto.ProductCreateRequest) (*model.Product, error) {
	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Sizes:       model.SizeList(req.Sizes),
		Category:    req.Category,
		InStock:     true,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("store product: %w", err)
	}

	return product, nil
}

// Patch applies only the fields present in the request; nil fields leave
// the stored value alone.
func (s *catalogServiceImpl) Patch(ctx context.Context, productID string, patch *dto.ProductPatch) (*model.Product, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Sizes != nil {
		updates["sizes"] = model.SizeList(*patch.Sizes)
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.InStock != nil {
		updates["in_stock"] = *patch.InStock
	}

	if len(updates) == 0 {
		return s.productRepo.FindByID(ctx, productID)
	}

	if err := s.productRepo.Update(ctx, productID, updates); err != nil {
		return nil, err
	}

	return s.productRepo.FindByID(ctx, productID)
}

func (s *catalogServiceImpl) Delete(ctx context.Context, productID string) error {
	return s.productRepo.Delete(ctx, productID)
}

// SeedInitialProducts loads the launch catalog on first boot; existing rows
// are left untouched.
func (s *catalogServiceImpl) SeedInitialProducts(ctx context.Context) error {
	allSizes := model.SizeList{"XS", "S", "M", "L", "XL", "XXL"}

	products := []model.Product{
		{ID: "1", Name: "Classic Vintage Tee", Description: "Premium cotton t-shirt with vintage-inspired design. Comfortable fit perfect for everyday wear.", Price: 34.99, Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800&q=80", Sizes: allSizes, Category: "vintage", InStock: true},
		{ID: "2", Name: "Minimalist Black Tee", Description: "Elegant black t-shirt with subtle design. Made from premium organic cotton.", Price: 29.99, Image: "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=800&q=80", Sizes: allSizes, Category: "minimal", InStock: true},
		{ID: "3", Name: "Artistic Expression Tee", Description: "Bold artistic design that makes a statement. Soft, breathable fabric.", Price: 39.99, Image: "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800&q=80", Sizes: allSizes, Category: "artistic", InStock: true},
		{ID: "4", Name: "Urban Street Tee", Description: "Modern streetwear design with premium quality. Perfect for urban lifestyle.", Price: 36.99, Image: "https://images.unsplash.com/photo-1562157873-818bc0726f68?w=800&q=80", Sizes: allSizes, Category: "streetwear", InStock: true},
		{ID: "5", Name: "Nature Inspired Tee", Description: "Beautiful nature-themed design. Eco-friendly and sustainable materials.", Price: 32.99, Image: "https://images.unsplash.com/photo-1622445275463-afa2ab738c34?w=800&q=80", Sizes: allSizes, Category: "nature", InStock: true},
		{ID: "6", Name: "Geometric Pattern Tee", Description: "Contemporary geometric design. Unique style for the modern individual.", Price: 37.99, Image: "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=800&q=80", Sizes: allSizes, Category: "geometric", InStock: true},
	}

	if err := s.productRepo.Seed(ctx, products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Println("catalog seed complete")
	return nil
}
