package services_test

import (
	"context"
	"sync"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/domain/ports"
)

// Fakes em memória para as suites de serviço. Seguem os mesmos
// contratos dos repositórios postgres (nil quando não encontrado),
// incluindo o lock de linha de FindByIDForUpdate, emulado por um mutex
// que o fakeUnitOfWork libera no fim da "transação".

type fakeLeadRepo struct {
	mu    sync.Mutex
	order []string
	leads map[string]entities.Lead

	rowMu          sync.Mutex
	rowLocked      bool
	forUpdateReads int
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]entities.Lead)}
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *entities.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[lead.ID] = *lead
	r.order = append(r.order, lead.ID)
	return nil
}

func (r *fakeLeadRepo) FindByID(_ context.Context, id string) (*entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	copied := lead
	return &copied, nil
}

func (r *fakeLeadRepo) FindByIDForUpdate(ctx context.Context, id string) (*entities.Lead, error) {
	r.rowMu.Lock()
	r.mu.Lock()
	r.rowLocked = true
	r.forUpdateReads++
	r.mu.Unlock()
	return r.FindByID(ctx, id)
}

// releaseRowLock emula o fim da transação que liberaria o FOR UPDATE
func (r *fakeLeadRepo) releaseRowLock() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rowLocked {
		r.rowLocked = false
		r.rowMu.Unlock()
	}
}

func (r *fakeLeadRepo) lockingReads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.forUpdateReads
}

func (r *fakeLeadRepo) Update(_ context.Context, lead *entities.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[lead.ID] = *lead
	return nil
}

func (r *fakeLeadRepo) List(_ context.Context) ([]*entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entities.Lead, 0, len(r.order))
	for _, id := range r.order {
		lead := r.leads[id]
		copied := lead
		result = append(result, &copied)
	}
	return result, nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]entities.Admin // por id
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]entities.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *entities.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[admin.ID] = *admin
	return nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id string) (*entities.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, nil
	}
	copied := admin
	return &copied, nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entities.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email.String() == email {
			copied := admin
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.admins, id)
}

// fakeUnitOfWork executa a função diretamente, sem transação real,
// mas libera o lock de linha do repositório ao "commitar", como o
// banco faria no fim da transação
type fakeUnitOfWork struct {
	repo *fakeLeadRepo
}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (u fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if u.repo != nil {
		u.repo.releaseRowLock()
	}
	return err
}

// fakePublisher registra os eventos publicados
type fakePublisher struct {
	mu      sync.Mutex
	created []entities.Lead
}

func (p *fakePublisher) LeadCreated(lead *entities.Lead) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, *lead)
}

func (p *fakePublisher) createdCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.created)
}

// nopLogger descarta tudo
type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }
