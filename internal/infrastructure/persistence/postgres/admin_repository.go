package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/domain/repositories"
	"github.com/vipnexus/funil-backend/internal/domain/valueobjects"
)

// AdminRepository implementa repositories.AdminRepository
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository cria um novo AdminRepository
func NewAdminRepository(db *gorm.DB) repositories.AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	model := r.toModel(admin)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	admin.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	return nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*entities.Admin, error) {
	var model AdminModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var model AdminModel

	db := r.getDB(ctx)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *AdminRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *AdminRepository) toModel(admin *entities.Admin) *AdminModel {
	return &AdminModel{
		ID:           admin.ID,
		Email:        admin.Email.String(),
		Nome:         admin.Nome,
		PasswordHash: admin.PasswordHash,
	}
}

func (r *AdminRepository) toEntity(model *AdminModel) (*entities.Admin, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Admin{
		ID:           model.ID,
		Email:        email,
		Nome:         model.Nome,
		PasswordHash: model.PasswordHash,
		CreatedAt:    time.Unix(model.CreatedAt, 0).UTC(),
	}, nil
}
