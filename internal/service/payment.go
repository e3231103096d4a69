package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/blastmusic247/blast-gear-full/internal/client"
	"github.com/blastmusic247/blast-gear-full/internal/dto"
)

type PaymentService interface {
	// CreatePaymentIntent opens an intent with the processor for the order
	// amount. One attempt per request; failures surface to the caller.
	CreatePaymentIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error)
}

type paymentServiceImpl struct {
	stripeClient client.StripeClient
}

func NewPaymentService(stripeClient client.StripeClient) PaymentService {
	return &paymentServiceImpl{
		stripeClient: stripeClient,
	}
}

func (s *paymentServiceImpl) CreatePaymentIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	amountCents := int64(math.Round(req.Amount * 100))

	summary := make([]string, len(req.Items))
	for i, item := range req.Items {
		summary[i] = fmt.Sprintf("%s x%d", item.Name, item.Quantity)
	}

	result, err := s.stripeClient.CreatePaymentIntent(ctx, amountCents, strings.Join(summary, ", "))
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &dto.PaymentIntentResponse{
		ClientSecret:    result.ClientSecret,
		PaymentIntentID: result.IntentID,
	}, nil
}
