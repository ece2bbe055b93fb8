package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bandoggie/backend/internal/models"
)

func (r *GormRepo) PendingCartByClient(ctx context.Context, clientID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("client_id = ? AND status = ?", clientID, models.CartStatusPending).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) CreateCart(ctx context.Context, cart *models.Cart) error {
	return r.DB.WithContext(ctx).Create(cart).Error
}

func (r *GormRepo) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Preload("Items").First(&cart, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) ListCarts(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.DB.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// AddItem merges into an existing (product, size) row or appends a new one,
// then recomputes the cart total. The whole mutation runs in one transaction
// so the total can never drift from the items.
func (r *GormRepo) AddItem(ctx context.Context, cartID uuid.UUID, item models.CartItem) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCart(tx, cartID, &cart); err != nil {
			return err
		}

		merged := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == item.ProductID && cart.Items[i].Size == item.Size {
				cart.Items[i].Quantity += item.Quantity
				cart.Items[i].UnitSubtotal = cart.Items[i].UnitSubtotal.Add(item.UnitSubtotal)
				if err := tx.Save(&cart.Items[i]).Error; err != nil {
					return err
				}
				merged = true
				break
			}
		}
		if !merged {
			item.CartID = cart.ID
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			cart.Items = append(cart.Items, item)
		}

		return saveTotal(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveItem drops the first line item matching productID and recomputes the
// total. Returns ErrLineItemNotFound when no row matches.
func (r *GormRepo) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCart(tx, cartID, &cart); err != nil {
			return err
		}

		idx := -1
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrLineItemNotFound
		}
		if err := tx.Delete(&cart.Items[idx]).Error; err != nil {
			return err
		}
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

		return saveTotal(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ReplaceItems swaps the full line-item set and recomputes the total.
func (r *GormRepo) ReplaceItems(ctx context.Context, cartID uuid.UUID, items []models.CartItem) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCart(tx, cartID, &cart); err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.Nil
			items[i].CartID = cart.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		cart.Items = items

		return saveTotal(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) UpdateCartStatus(ctx context.Context, cartID uuid.UUID, status string) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCart(tx, cartID, &cart); err != nil {
			return err
		}
		cart.Status = status
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ClearCart empties the line items and zeroes the total, status untouched.
func (r *GormRepo) ClearCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCart(tx, cartID, &cart); err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		cart.Items = nil
		return saveTotal(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Cart{}, "id = ?", cartID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

type CartStats struct {
	Carts      int64           `json:"carts"`
	LineItems  int64           `json:"line_items"`
	TotalValue decimal.Decimal `json:"total_value"`
	Pending    int64           `json:"pending"`
	Paid       int64           `json:"paid"`
}

func (r *GormRepo) CartStats(ctx context.Context) (*CartStats, error) {
	stats := &CartStats{TotalValue: decimal.Zero}
	db := r.DB.WithContext(ctx)

	if err := db.Model(&models.Cart{}).Count(&stats.Carts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.CartItem{}).Count(&stats.LineItems).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Cart{}).Where("status = ?", models.CartStatusPending).Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Cart{}).Where("status = ?", models.CartStatusPaid).Count(&stats.Paid).Error; err != nil {
		return nil, err
	}

	var totals []decimal.Decimal
	if err := db.Model(&models.Cart{}).Pluck("total", &totals).Error; err != nil {
		return nil, err
	}
	for _, t := range totals {
		stats.TotalValue = stats.TotalValue.Add(t)
	}
	return stats, nil
}

func lockCart(tx *gorm.DB, id uuid.UUID, cart *models.Cart) error {
	q := tx
	// sqlite (tests) has no SELECT ... FOR UPDATE
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q.Preload("Items").First(cart, "id = ?", id).Error
}

func saveTotal(tx *gorm.DB, cart *models.Cart) error {
	total := decimal.Zero
	for i := range cart.Items {
		total = total.Add(cart.Items[i].UnitSubtotal)
	}
	cart.Total = total
	return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("total", total).Error
}
