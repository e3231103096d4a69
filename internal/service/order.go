package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/blastmusic247/blast-gear-full/internal/client"
	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/model"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"github.com/google/uuid"
)

const defaultOrderStatus = "Processing"

type OrderService interface {
	Create(ctx context.Context, req *dto.OrderCreateRequest) (*model.Order, error)
	Get(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error)
	Refund(ctx context.Context, orderID string) error
	Delete(ctx context.Context, orderID string) error
}

type orderServiceImpl struct {
	orderRepo  repository.OrderRepository
	mailClient client.MailClient
}

func NewOrderService(orderRepo repository.OrderRepository, mailClient client.MailClient) OrderService {
	return &orderServiceImpl{
		orderRepo:  orderRepo,
		mailClient: mailClient,
	}
}

// newOrderID keeps the customer-facing ORD- shape while drawing the suffix
// from a uuid, so concurrent checkouts cannot collide.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
	return "ORD-" + suffix
}

func (s *orderServiceImpl) Create(ctx context.Context, req *dto.OrderCreateRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
	}

	order := &model.Order{
		OrderID:  newOrderID(),
		Customer: req.Customer,
		Subtotal: req.Subtotal,
		Shipping: req.Shipping,
		Tax:      req.Tax,
		Total:    req.Total,
		Status:   defaultOrderStatus,
	}

	order.Items = make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		order.Items[i] = model.OrderItem{
			OrderID:   order.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Image:     item.Image,
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	// Notification failures must never fail checkout.
	if err := s.mailClient.SendAdminOrderNotification(order); err != nil {
		log.Printf("admin notification for order %s: %v", order.OrderID, err)
	}
	if err := s.mailClient.SendCustomerOrderConfirmation(order); err != nil {
		log.Printf("customer confirmation for order %s: %v", order.OrderID, err)
	}

	return order, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderRepo.FindByOrderID(ctx, orderID)
}

func (s *orderServiceImpl) List(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByOrderID(ctx, orderID)
}

// Refund marks the order refunded. The actual money movement happens in the
// payment processor dashboard; the intent id is not stored with the order.
func (s *orderServiceImpl) Refund(ctx context.Context, orderID string) error {
	if err := s.orderRepo.UpdateStatus(ctx, orderID, "Refunded"); err != nil {
		return err
	}

	log.Println("order marked as refunded:", orderID)
	return nil
}

func (s *orderServiceImpl) Delete(ctx context.Context, orderID string) error {
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}

	log.Println("order deleted by admin:", orderID)
	return nil
}
