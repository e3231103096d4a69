package dto

import (
	"time"

	"github.com/blastmusic247/blast-gear-full/internal/model"
)

type LoginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ProductCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Category    string   `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// ProductPatch carries partial updates; nil means "leave unchanged".
type ProductPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Sizes       *[]string `json:"sizes"`
	Category    *string   `json:"category"`
	InStock     *bool     `json:"inStock"`
}

type OrderCreateRequest struct {
	Customer model.CustomerInfo `json:"customer"`
	Items    []OrderItemInput   `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Shipping float64            `json:"shipping"`
	Tax      float64            `json:"tax"`
	Total    float64            `json:"total"`
}

type OrderItemInput struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int32   `json:"quantity"`
	Image     string  `json:"image"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type PromoCreateRequest struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	Description   string     `json:"description"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	UsageLimit    *int       `json:"usageLimit"`
	IsActive      *bool      `json:"isActive"`
}

type PromoValidateRequest struct {
	Code       string  `json:"code"`
	OrderTotal float64 `json:"orderTotal"`
}

type PromoValidateResponse struct {
	Valid          bool    `json:"valid"`
	Code           string  `json:"code"`
	DiscountType   string  `json:"discountType"`
	DiscountValue  float64 `json:"discountValue"`
	DiscountAmount float64 `json:"discountAmount"`
	NewTotal       float64 `json:"newTotal"`
	Description    string  `json:"description"`
}

type PaymentItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

type PaymentIntentRequest struct {
	Amount float64       `json:"amount"`
	Items  []PaymentItem `json:"items"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type ContactRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Message       string `json:"message"`
	HCaptchaToken string `json:"hcaptchaToken"`
}

type GalleryImageCreateRequest struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	SortOrder int    `json:"order"`
}

type GalleryImagePatch struct {
	Alt       *string `json:"alt"`
	SortOrder *int    `json:"order"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type BulkUploadResponse struct {
	Success bool                 `json:"success"`
	Added   int                  `json:"added"`
	Errors  []string             `json:"errors"`
	Images  []model.GalleryImage `json:"images"`
}
