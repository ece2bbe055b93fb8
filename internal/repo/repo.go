package repo

import (
	"errors"

	"gorm.io/gorm"
)

// GormRepo is the persistence layer shared by every service.
type GormRepo struct {
	DB *gorm.DB
}

var (
	ErrLineItemNotFound = errors.New("line item not found")
	ErrDuplicateEmail   = errors.New("email already registered")
)
