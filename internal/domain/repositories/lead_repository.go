package repositories

import (
	"context"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
)

// LeadRepository define a interface para persistência de leads.
// FindByID retorna (nil, nil) quando o lead não existe; o serviço
// traduz para o erro de domínio. Leads nunca são removidos.
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	FindByID(ctx context.Context, id string) (*entities.Lead, error)
	// FindByIDForUpdate trava a linha até o fim da transação corrente.
	// Deve ser chamado dentro de uma transação do UnitOfWork; é a
	// leitura usada pelo read-modify-write de atualização para que
	// duas atualizações concorrentes no mesmo lead não se sobrescrevam.
	FindByIDForUpdate(ctx context.Context, id string) (*entities.Lead, error)
	Update(ctx context.Context, lead *entities.Lead) error
	// List retorna todos os leads em ordem de inserção (estável)
	List(ctx context.Context) ([]*entities.Lead, error)
}
