package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/domain/ports"
	"github.com/vipnexus/funil-backend/internal/domain/repositories"
	"github.com/vipnexus/funil-backend/internal/domain/valueobjects"
)

// LeadService contém a lógica de negócio do funil de leads
type LeadService struct {
	leadRepo  repositories.LeadRepository
	uow       ports.UnitOfWork
	publisher ports.LeadEventPublisher
	logger    ports.Logger
}

// NewLeadService cria um novo LeadService
func NewLeadService(
	leadRepo repositories.LeadRepository,
	uow ports.UnitOfWork,
	publisher ports.LeadEventPublisher,
	logger ports.Logger,
) *LeadService {
	return &LeadService{
		leadRepo:  leadRepo,
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateLeadInput representa os dados capturados pela landing page
type CreateLeadInput struct {
	Nome     string
	Email    string
	Telefone string
	Fonte    string
}

// UpdateLeadInput representa uma atualização parcial de status/notas
type UpdateLeadInput struct {
	Status *string
	Notas  *string
}

// Create registra um novo lead com status inicial "novo" e publica o
// evento de captura para os dashboards conectados
func (s *LeadService) Create(ctx context.Context, input CreateLeadInput) (*entities.Lead, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	fonte := input.Fonte
	if fonte == "" {
		fonte = entities.FonteLandingPage
	}

	lead := &entities.Lead{
		ID:        uuid.NewString(),
		Nome:      input.Nome,
		Email:     email,
		Telefone:  input.Telefone,
		Status:    entities.StatusNovo,
		Fonte:     fonte,
		Timestamp: time.Now().UTC(),
	}

	if err := lead.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Message: "error.validation.detail",
			Err:     err,
		}
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.logger.Info("lead created",
		"id", lead.ID,
		"email", lead.Email.String(),
		"fonte", lead.Fonte,
	)

	if s.publisher != nil {
		s.publisher.LeadCreated(lead)
	}

	return lead, nil
}

// List retorna todos os leads em ordem de inserção
func (s *LeadService) List(ctx context.Context) ([]*entities.Lead, error) {
	return s.leadRepo.List(ctx)
}

// Get busca um lead por ID
func (s *LeadService) Get(ctx context.Context, id string) (*entities.Lead, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.ErrLeadNotFound
	}
	return lead, nil
}

// Update aplica uma atualização parcial de status e/ou notas.
// O read-modify-write roda dentro de uma transação e lê a linha com
// lock de atualização: duas atualizações concorrentes no mesmo lead
// serializam, cada uma mesclando sobre o estado commitado da anterior.
func (s *LeadService) Update(ctx context.Context, id string, input UpdateLeadInput) (*entities.Lead, error) {
	if input.Status == nil && input.Notas == nil {
		return nil, errors.ErrNothingToUpdate
	}

	if input.Status != nil && !entities.Status(*input.Status).IsValid() {
		return nil, errors.ErrInvalidStatus
	}

	var updated *entities.Lead

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		lead, err := s.leadRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if lead == nil {
			return errors.ErrLeadNotFound
		}

		if input.Status != nil {
			// Qualquer transição é permitida: triagem manual
			lead.Status = entities.Status(*input.Status)
		}
		if input.Notas != nil {
			lead.Notas = input.Notas
		}
		lead.Touch(time.Now().UTC())

		if err := s.leadRepo.Update(txCtx, lead); err != nil {
			return err
		}

		updated = lead
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead updated", "id", id)
	return updated, nil
}

// Stats calcula as métricas do funil a partir do conteúdo atual do store
func (s *LeadService) Stats(ctx context.Context) (*Stats, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(leads)
	return &stats, nil
}
