package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/domain/repositories"
	"github.com/vipnexus/funil-backend/internal/domain/valueobjects"
)

// LeadRepository implementa repositories.LeadRepository
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository cria um novo LeadRepository
func NewLeadRepository(db *gorm.DB) repositories.LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	model := r.toModel(lead)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	// CreatedAt é atribuído pelo GORM no insert
	lead.Timestamp = time.Unix(0, model.CreatedAt).UTC()
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entities.Lead, error) {
	var model LeadModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// FindByIDForUpdate lê a linha com SELECT ... FOR UPDATE, segurando o
// lock até o fim da transação no contexto. Atualizações concorrentes no
// mesmo lead enxergam sempre o estado já commitado uma da outra.
// O driver sqlite dos testes ignora a cláusula de lock; o comportamento
// real é coberto pelo teste de integração com PostgreSQL.
func (r *LeadRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Lead, error) {
	var model LeadModel

	db := r.getDB(ctx)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *LeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	model := r.toModel(lead)

	db := r.getDB(ctx)
	// Updates com struct preservaria CreatedAt zero; salvar colunas mutáveis
	return db.Model(&LeadModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"notas":      model.Notas,
			"updated_at": model.UpdatedAt,
		}).Error
}

func (r *LeadRepository) List(ctx context.Context) ([]*entities.Lead, error) {
	var models []*LeadModel

	db := r.getDB(ctx)
	if err := db.Model(&LeadModel{}).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *LeadRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *LeadRepository) toModel(lead *entities.Lead) *LeadModel {
	var updatedAt *int64
	if lead.UpdatedAt != nil {
		ts := lead.UpdatedAt.UnixNano()
		updatedAt = &ts
	}

	var createdAt int64
	if !lead.Timestamp.IsZero() {
		createdAt = lead.Timestamp.UnixNano()
	}

	return &LeadModel{
		ID:        lead.ID,
		Nome:      lead.Nome,
		Email:     lead.Email.String(),
		Telefone:  lead.Telefone,
		Status:    string(lead.Status),
		Fonte:     lead.Fonte,
		Notas:     lead.Notas,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func (r *LeadRepository) toEntity(model *LeadModel) (*entities.Lead, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if model.UpdatedAt != nil {
		ts := time.Unix(0, *model.UpdatedAt).UTC()
		updatedAt = &ts
	}

	return &entities.Lead{
		ID:        model.ID,
		Nome:      model.Nome,
		Email:     email,
		Telefone:  model.Telefone,
		Status:    entities.Status(model.Status),
		Fonte:     model.Fonte,
		Notas:     model.Notas,
		Timestamp: time.Unix(0, model.CreatedAt).UTC(),
		UpdatedAt: updatedAt,
	}, nil
}

func (r *LeadRepository) toEntities(models []*LeadModel) ([]*entities.Lead, error) {
	leads := make([]*entities.Lead, 0, len(models))

	for _, model := range models {
		lead, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, nil
}
