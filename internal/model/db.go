package model

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Product struct {
	ID          string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `gorm:"size:512" json:"image"`
	Sizes       SizeList  `gorm:"type:text" json:"sizes"`
	Category    string    `gorm:"size:64;index" json:"category"`
	InStock     bool      `gorm:"not null;default:true" json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Order struct {
	OrderID   string       `gorm:"primaryKey;size:64;not null" json:"orderId"`
	Customer  CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items     []OrderItem  `gorm:"foreignKey:OrderID;references:OrderID" json:"items"`
	Subtotal  float64      `gorm:"not null" json:"subtotal"`
	Shipping  float64      `gorm:"not null" json:"shipping"`
	Tax       float64      `gorm:"not null" json:"tax"`
	Total     float64      `gorm:"not null" json:"total"`
	Status    string       `gorm:"size:32;index;not null" json:"status"` // Processing, Shipped, Delivered, Refunded, ...
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"-"`
}

type CustomerInfo struct {
	FirstName string `gorm:"size:64" json:"firstName"`
	LastName  string `gorm:"size:64" json:"lastName"`
	Email     string `gorm:"size:255;index" json:"email"`
	Phone     string `gorm:"size:32" json:"phone"`
	Address   string `gorm:"size:255" json:"address"`
	City      string `gorm:"size:64" json:"city"`
	State     string `gorm:"size:64" json:"state"`
	ZipCode   string `gorm:"size:16" json:"zipCode"`
	Country   string `gorm:"size:64" json:"country"`
}

// OrderItem snapshots product fields at order time, so later catalog edits
// never rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"size:64;index;not null" json:"-"`
	ProductID string  `gorm:"size:64;index;not null" json:"productId"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Size      string  `gorm:"size:8" json:"size"`
	Quantity  int32   `gorm:"not null" json:"quantity"`
	Image     string  `gorm:"size:512" json:"image"`

	CreatedAt time.Time `json:"-"`
}

// PromoCode.Code is stored upper-cased; lookups upper-case their input so
// codes match case-insensitively.
type PromoCode struct {
	ID            string       `gorm:"primaryKey;size:64;not null" json:"id"`
	Code          string       `gorm:"size:64;uniqueIndex;not null" json:"code"`
	DiscountType  DiscountType `gorm:"size:16;not null" json:"discountType"`
	DiscountValue float64      `gorm:"not null" json:"discountValue"`
	Description   string       `gorm:"size:255" json:"description"`
	ExpiryDate    *time.Time   `json:"expiryDate"`
	UsageLimit    *int         `json:"usageLimit"`
	UsedCount     int          `gorm:"not null;default:0" json:"usedCount"`
	IsActive      bool         `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type GalleryImage struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	Alt       string    `gorm:"size:255" json:"alt"`
	SortOrder int       `gorm:"index;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
