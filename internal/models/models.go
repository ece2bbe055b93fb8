package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Principal kinds, in login lookup priority order.
const (
	KindClient   = "client"
	KindVet      = "vet"
	KindEmployee = "employee"
)

// Cart statuses.
const (
	CartStatusPending = "pending"
	CartStatusPaid    = "paid"
)

// Payment methods accepted on orders.
const (
	PaymentTransfer = "transferencia"
	PaymentCash     = "efectivo"
)

// Line item sizes.
var Sizes = []string{"XS", "S", "M", "L", "XL"}

func ValidSize(s string) bool {
	for _, v := range Sizes {
		if s == v {
			return true
		}
	}
	return false
}

type Client struct {
	ID           uuid.UUID `gorm:"primaryKey"      json:"id"`
	Name         string    `gorm:"not null"        json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Phone        string    `json:"phone"`
	BirthDate    time.Time `json:"birth_date"`
	PasswordHash string    `gorm:"not null"        json:"-"`
	ImageURL     string    `json:"image_url"`
	Verified     bool      `gorm:"default:false"   json:"verified"`
}

type Vet struct {
	ID           uuid.UUID `gorm:"primaryKey"      json:"id"`
	Name         string    `gorm:"not null"        json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Location     string    `json:"location"`
	NIT          string    `json:"nit"`
	PasswordHash string    `gorm:"not null"        json:"-"`
	Verified     bool      `gorm:"default:false"   json:"verified"`
}

type Employee struct {
	ID           uuid.UUID `gorm:"primaryKey"      json:"id"`
	Name         string    `gorm:"not null"        json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Phone        string    `json:"phone"`
	DUI          string    `json:"dui"`
	PasswordHash string    `gorm:"not null"        json:"-"`
	Role         string    `gorm:"not null;default:employee" json:"role"`
}

type Category struct {
	ID   uuid.UUID `gorm:"primaryKey"      json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`
}

type Product struct {
	ID          uuid.UUID       `gorm:"primaryKey"   json:"id"`
	Name        string          `gorm:"not null"     json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric" json:"price"`
	CategoryID  uuid.UUID       `gorm:"index"        json:"category_id"`
	ImageURL    string          `json:"image_url"`
}

type Holiday struct {
	ID   uuid.UUID `gorm:"primaryKey"      json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`
	Date time.Time `gorm:"not null"        json:"date"`
}

type CartItem struct {
	ID           uuid.UUID       `gorm:"primaryKey"     json:"id"`
	CartID       uuid.UUID       `gorm:"index;not null" json:"cart_id"`
	ProductID    uuid.UUID       `gorm:"not null"       json:"product_id"`
	Quantity     int             `gorm:"not null;check:quantity>0" json:"quantity"`
	UnitSubtotal decimal.Decimal `gorm:"type:numeric"   json:"unit_subtotal"`
	Size         string          `json:"size,omitempty"`
}

type Cart struct {
	ID        uuid.UUID       `gorm:"primaryKey"     json:"id"`
	ClientID  uuid.UUID       `gorm:"index;not null" json:"client_id"`
	Items     []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     decimal.Decimal `gorm:"type:numeric"   json:"total"`
	Status    string          `gorm:"not null;default:pending" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Order struct {
	ID              uuid.UUID `gorm:"primaryKey"     json:"id"`
	CartID          uuid.UUID `gorm:"index;not null" json:"cart_id"`
	DeliveryAddress string    `gorm:"not null"       json:"delivery_address"`
	PaymentMethod   string    `gorm:"not null"       json:"payment_method"`
	CreatedAt       time.Time `json:"created_at"`
}

type Review struct {
	ID        uuid.UUID `gorm:"primaryKey"     json:"id"`
	ProductID uuid.UUID `gorm:"index;not null" json:"product_id"`
	ClientID  uuid.UUID `gorm:"index;not null" json:"client_id"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Guest purchase records: contact capture outside the principal model.
type RetailGuest struct {
	ID    uuid.UUID `gorm:"primaryKey" json:"id"`
	Name  string    `gorm:"not null"   json:"name"`
	Email string    `gorm:"not null"   json:"email"`
	Phone string    `json:"phone"`
}

type WholesaleGuest struct {
	ID      uuid.UUID `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"not null"   json:"name"`
	Email   string    `gorm:"not null"   json:"email"`
	Phone   string    `json:"phone"`
	Company string    `json:"company"`
	NIT     string    `json:"nit"`
}

func (m *Client) BeforeCreate(tx *gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *Vet) BeforeCreate(tx *gorm.DB) error            { ensureID(&m.ID); return nil }
func (m *Employee) BeforeCreate(tx *gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *Category) BeforeCreate(tx *gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *Product) BeforeCreate(tx *gorm.DB) error        { ensureID(&m.ID); return nil }
func (m *Holiday) BeforeCreate(tx *gorm.DB) error        { ensureID(&m.ID); return nil }
func (m *Cart) BeforeCreate(tx *gorm.DB) error           { ensureID(&m.ID); return nil }
func (m *CartItem) BeforeCreate(tx *gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *Order) BeforeCreate(tx *gorm.DB) error          { ensureID(&m.ID); return nil }
func (m *Review) BeforeCreate(tx *gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *RetailGuest) BeforeCreate(tx *gorm.DB) error    { ensureID(&m.ID); return nil }
func (m *WholesaleGuest) BeforeCreate(tx *gorm.DB) error { ensureID(&m.ID); return nil }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every persisted model for AutoMigrate.
func All() []any {
	return []any{
		&Client{}, &Vet{}, &Employee{},
		&Category{}, &Product{}, &Holiday{},
		&Cart{}, &CartItem{}, &Order{},
		&Review{}, &RetailGuest{}, &WholesaleGuest{},
	}
}
