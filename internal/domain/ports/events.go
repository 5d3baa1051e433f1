package ports

import "github.com/vipnexus/funil-backend/internal/domain/entities"

// LeadEventPublisher publica eventos de lead para consumidores em
// processo (dashboard em tempo real). Publicação nunca bloqueia a
// criação do lead.
type LeadEventPublisher interface {
	LeadCreated(lead *entities.Lead)
}
