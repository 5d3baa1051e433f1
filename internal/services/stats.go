package services

import (
	"math"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
)

// Stats agrega as métricas do funil de vendas
type Stats struct {
	TotalLeads        int
	LeadsNovos        int
	LeadsQualificados int
	LeadsVendidos     int
	TaxaConversao     float64
}

// ComputeStats deriva as métricas do conteúdo atual da lista de leads.
// Função pura, recalculada a cada chamada (sem cache).
func ComputeStats(leads []*entities.Lead) Stats {
	stats := Stats{TotalLeads: len(leads)}

	for _, lead := range leads {
		switch lead.Status {
		case entities.StatusNovo:
			stats.LeadsNovos++
		case entities.StatusQualificado:
			stats.LeadsQualificados++
		case entities.StatusVendido:
			stats.LeadsVendidos++
		}
	}

	if stats.TotalLeads > 0 {
		taxa := float64(stats.LeadsVendidos) / float64(stats.TotalLeads) * 100
		// Uma casa decimal
		stats.TaxaConversao = math.Round(taxa*10) / 10
	}

	return stats
}
