package dto

import (
	"time"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/services"
)

// CreateLeadRequest representa a captura da landing page (rota pública)
type CreateLeadRequest struct {
	Nome     string `json:"nome" binding:"required,min=2,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone" binding:"required,min=8,max=30"`
	Fonte    string `json:"fonte" binding:"omitempty,max=100"`
}

// UpdateLeadRequest representa a atualização parcial de um lead
type UpdateLeadRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=novo contatado qualificado vendido perdido"`
	Notas  *string `json:"notas" binding:"omitempty,max=2000"`
}

// LeadResponse representa a resposta de um lead
type LeadResponse struct {
	ID        string     `json:"id"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	Telefone  string     `json:"telefone"`
	Status    string     `json:"status"`
	Fonte     string     `json:"fonte"`
	Notas     *string    `json:"notas,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// StatsResponse representa as métricas do funil
type StatsResponse struct {
	TotalLeads        int     `json:"total_leads"`
	LeadsNovos        int     `json:"leads_novos"`
	LeadsQualificados int     `json:"leads_qualificados"`
	LeadsVendidos     int     `json:"leads_vendidos"`
	TaxaConversao     float64 `json:"taxa_conversao"`
}

// ToLeadResponse converte uma entidade Lead para LeadResponse
func ToLeadResponse(lead *entities.Lead) LeadResponse {
	return LeadResponse{
		ID:        lead.ID,
		Nome:      lead.Nome,
		Email:     lead.Email.String(),
		Telefone:  lead.Telefone,
		Status:    string(lead.Status),
		Fonte:     lead.Fonte,
		Notas:     lead.Notas,
		Timestamp: lead.Timestamp,
		UpdatedAt: lead.UpdatedAt,
	}
}

// ToLeadResponses converte uma lista de entidades Lead para LeadResponse
func ToLeadResponses(leads []*entities.Lead) []LeadResponse {
	responses := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = ToLeadResponse(lead)
	}
	return responses
}

// ToStatsResponse converte as métricas calculadas para StatsResponse
func ToStatsResponse(stats *services.Stats) StatsResponse {
	return StatsResponse{
		TotalLeads:        stats.TotalLeads,
		LeadsNovos:        stats.LeadsNovos,
		LeadsQualificados: stats.LeadsQualificados,
		LeadsVendidos:     stats.LeadsVendidos,
		TaxaConversao:     stats.TaxaConversao,
	}
}
