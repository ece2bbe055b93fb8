package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/models"
)

func (r *GormRepo) FindClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) FindVetByEmail(ctx context.Context, email string) (*models.Vet, error) {
	var v models.Vet
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *GormRepo) FindEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var e models.Employee
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormRepo) CreateClient(ctx context.Context, c *models.Client) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", c.Email).FirstOrCreate(c)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrDuplicateEmail
	}
	return nil
}

func (r *GormRepo) CreateVet(ctx context.Context, v *models.Vet) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", v.Email).FirstOrCreate(v)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrDuplicateEmail
	}
	return nil
}

func (r *GormRepo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", e.Email).FirstOrCreate(e)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrDuplicateEmail
	}
	return nil
}

func (r *GormRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	return out, r.DB.WithContext(ctx).Find(&out).Error
}

func (r *GormRepo) ListVets(ctx context.Context) ([]models.Vet, error) {
	var out []models.Vet
	return out, r.DB.WithContext(ctx).Find(&out).Error
}

func (r *GormRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	return out, r.DB.WithContext(ctx).Find(&out).Error
}

func (r *GormRepo) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var c models.Client
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) GetVet(ctx context.Context, id uuid.UUID) (*models.Vet, error) {
	var v models.Vet
	if err := r.DB.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *GormRepo) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var e models.Employee
	if err := r.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormRepo) UpdateClient(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.DB.WithContext(ctx), &models.Client{}, id, fields)
}

func (r *GormRepo) UpdateVet(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.DB.WithContext(ctx), &models.Vet{}, id, fields)
}

func (r *GormRepo) UpdateEmployee(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.DB.WithContext(ctx), &models.Employee{}, id, fields)
}

func (r *GormRepo) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Client{}, id)
}

func (r *GormRepo) DeleteVet(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Vet{}, id)
}

func (r *GormRepo) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Employee{}, id)
}

// Password and verification updates keyed by email, used by the verification
// flow where only the ticket's email identifies the principal.

func (r *GormRepo) SetClientPassword(ctx context.Context, email, passwordHash string) error {
	return r.DB.WithContext(ctx).Model(&models.Client{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (r *GormRepo) SetVetPassword(ctx context.Context, email, passwordHash string) error {
	return r.DB.WithContext(ctx).Model(&models.Vet{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (r *GormRepo) MarkClientVerified(ctx context.Context, email string) error {
	return r.DB.WithContext(ctx).Model(&models.Client{}).
		Where("email = ?", email).
		Update("verified", true).Error
}

func (r *GormRepo) MarkVetVerified(ctx context.Context, email string) error {
	return r.DB.WithContext(ctx).Model(&models.Vet{}).
		Where("email = ?", email).
		Update("verified", true).Error
}

func updateByID(db *gorm.DB, model any, id uuid.UUID, fields map[string]any) error {
	res := db.Model(model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteByID(db *gorm.DB, model any, id uuid.UUID) error {
	res := db.Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
