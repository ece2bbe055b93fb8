package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message  string       `json:"message"`
	UserType string       `json:"userType"`
	Token    string       `json:"token"`
	User     LoginUserDTO `json:"user"`
}

type LoginUserDTO struct {
	ID    uuid.UUID `json:"_id"`
	Email string    `json:"email"`
}

type RegisterClientRequest struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birth_date"`
	Password  string    `json:"password"`
	ImageURL  string    `json:"image_url"`
}

type RegisterVetRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	NIT      string `json:"nit"`
	Password string `json:"password"`
}

type RegisterEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	DUI      string `json:"dui"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type UpdateClientRequest struct {
	Name      *string    `json:"name"`
	Phone     *string    `json:"phone"`
	BirthDate *time.Time `json:"birth_date"`
	ImageURL  *string    `json:"image_url"`
}

type UpdateVetRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	NIT      *string `json:"nit"`
}

type UpdateEmployeeRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	DUI   *string `json:"dui"`
	Role  *string `json:"role"`
}

type RequestCodeRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Code string `json:"code"`
}

type NewPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type CartItemDTO struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Quantity     int             `json:"quantity"`
	UnitSubtotal decimal.Decimal `json:"unit_subtotal"`
	Size         string          `json:"size,omitempty"`
}

type CreateCartRequest struct {
	ClientID uuid.UUID     `json:"client_id"`
	Items    []CartItemDTO `json:"items"`
}

type UpdateCartRequest struct {
	Items  []CartItemDTO `json:"items"`
	Status string        `json:"status"`
}

type CreateOrderRequest struct {
	CartID          uuid.UUID `json:"cart_id"`
	DeliveryAddress string    `json:"delivery_address"`
	PaymentMethod   string    `json:"payment_method"`
}

type UpdateOrderRequest struct {
	CartID          *uuid.UUID `json:"cart_id"`
	DeliveryAddress *string    `json:"delivery_address"`
	PaymentMethod   *string    `json:"payment_method"`
}

type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uuid.UUID       `json:"category_id"`
	ImageURL    string          `json:"image_url"`
}

type SearchResponse struct {
	Total int64 `json:"total"`
	Items any   `json:"items"`
}

type ReviewRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}

type GuestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
	NIT     string `json:"nit,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
