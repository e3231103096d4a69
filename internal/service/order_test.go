package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/model"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"gorm.io/gorm"
)

func newOrderService(t *testing.T) OrderService {
	t.Helper()
	return NewOrderService(repository.NewOrderRepository(newTestDB(t)), noopMailClient{})
}

func sampleOrderRequest() *dto.OrderCreateRequest {
	return &dto.OrderCreateRequest{
		Customer: model.CustomerInfo{
			FirstName: "Jamie",
			LastName:  "Reyes",
			Email:     "jamie@example.com",
			Address:   "1 Main St",
			City:      "Austin",
			State:     "TX",
			ZipCode:   "78701",
			Country:   "US",
		},
		Items: []dto.OrderItemInput{
			{ProductID: "1", Name: "Classic Vintage Tee", Price: 34.99, Size: "M", Quantity: 1},
		},
		Subtotal: 34.99,
		Shipping: 10.00,
		Tax:      3.50,
		Total:    48.49,
	}
}

func TestCreateOrderStoresTotalsAndItems(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(t)

	order, err := svc.Create(ctx, sampleOrderRequest())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(order.OrderID, "ORD-") {
		t.Errorf("orderID = %q, want ORD- prefix", order.OrderID)
	}
	if order.Status != "Processing" {
		t.Errorf("status = %q, want Processing", order.Status)
	}

	stored, err := svc.Get(ctx, order.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Total != 48.49 {
		t.Errorf("total = %v, want 48.49", stored.Total)
	}
	if len(stored.Items) != 1 || stored.Items[0].Name != "Classic Vintage Tee" {
		t.Errorf("items = %+v, want snapshot of one line item", stored.Items)
	}
}

func TestOrderIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newOrderID()
		if seen[id] {
			t.Fatalf("duplicate order id %s", id)
		}
		seen[id] = true
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc := newOrderService(t)

	req := sampleOrderRequest()
	req.Items = nil

	if _, err := svc.Create(context.Background(), req); err == nil {
		t.Error("expected error for order with no items")
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(t)

	order, err := svc.Create(ctx, sampleOrderRequest())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateStatus(ctx, order.OrderID, "Shipped")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != "Shipped" {
		t.Errorf("status = %q, want Shipped", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, "ORD-MISSING", "Shipped"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}

func TestRefundMarksOrderRefunded(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(t)

	order, err := svc.Create(ctx, sampleOrderRequest())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Refund(ctx, order.OrderID); err != nil {
		t.Fatal(err)
	}

	stored, err := svc.Get(ctx, order.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != "Refunded" {
		t.Errorf("status = %q, want Refunded", stored.Status)
	}
}

func TestDeleteOrderIsHardDelete(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(t)

	order, err := svc.Create(ctx, sampleOrderRequest())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, order.OrderID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Get(ctx, order.OrderID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("get after delete: err = %v, want record not found", err)
	}

	if err := svc.Delete(ctx, order.OrderID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second delete: err = %v, want record not found", err)
	}
}
