package entities

import (
	"errors"
	"time"

	"github.com/vipnexus/funil-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidLeadData = errors.New("invalid lead data")
)

// Status representa o estágio de um lead no funil de vendas
type Status string

const (
	StatusNovo        Status = "novo"
	StatusContatado   Status = "contatado"
	StatusQualificado Status = "qualificado"
	StatusVendido     Status = "vendido"
	StatusPerdido     Status = "perdido"
)

// AllStatuses lista todos os status válidos, na ordem do funil
var AllStatuses = []Status{
	StatusNovo,
	StatusContatado,
	StatusQualificado,
	StatusVendido,
	StatusPerdido,
}

// IsValid verifica se o status pertence à enumeração
func (s Status) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// FonteLandingPage é a fonte padrão de captação
const FonteLandingPage = "landing_page"

// Lead representa um contato capturado pela landing page
type Lead struct {
	ID        string
	Nome      string
	Email     valueobjects.Email
	Telefone  string
	Status    Status
	Fonte     string
	Notas     *string
	Timestamp time.Time
	UpdatedAt *time.Time // nil até a primeira atualização
}

// Touch registra o instante da última mutação
func (l *Lead) Touch(now time.Time) {
	l.UpdatedAt = &now
}

// Validate valida regras de negócio da entidade Lead
func (l *Lead) Validate() error {
	if l.Nome == "" {
		return errors.New("nome is required")
	}

	if l.Email.String() == "" {
		return errors.New("email is required")
	}

	if l.Telefone == "" {
		return errors.New("telefone is required")
	}

	if !l.Status.IsValid() {
		return errors.New("invalid status")
	}

	if l.UpdatedAt != nil && l.UpdatedAt.Before(l.Timestamp) {
		return errors.New("updated_at must not precede timestamp")
	}

	return nil
}
