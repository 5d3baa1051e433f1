package entities

import (
	"testing"
	"time"

	"github.com/vipnexus/funil-backend/internal/domain/valueobjects"
)

func validLead(t *testing.T) *Lead {
	t.Helper()

	email, err := valueobjects.NewEmail("ana@x.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}

	return &Lead{
		ID:        "lead-1",
		Nome:      "Ana",
		Email:     email,
		Telefone:  "11999999999",
		Status:    StatusNovo,
		Fonte:     FonteLandingPage,
		Timestamp: time.Now().UTC(),
	}
}

func TestStatusIsValid(t *testing.T) {
	t.Run("aceita os cinco status do funil", func(t *testing.T) {
		for _, status := range AllStatuses {
			if !status.IsValid() {
				t.Errorf("esperava status %q válido", status)
			}
		}
	})

	t.Run("rejeita status fora da enumeração", func(t *testing.T) {
		for _, status := range []Status{"", "qualified", "sold", "NOVO", "fechado"} {
			if status.IsValid() {
				t.Errorf("esperava status %q inválido", status)
			}
		}
	})
}

func TestLeadValidate(t *testing.T) {
	t.Run("lead completo é válido", func(t *testing.T) {
		if err := validLead(t).Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("nome é obrigatório", func(t *testing.T) {
		lead := validLead(t)
		lead.Nome = ""
		if err := lead.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("telefone é obrigatório", func(t *testing.T) {
		lead := validLead(t)
		lead.Telefone = ""
		if err := lead.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("status precisa pertencer à enumeração", func(t *testing.T) {
		lead := validLead(t)
		lead.Status = "fechado"
		if err := lead.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("updated_at não pode preceder timestamp", func(t *testing.T) {
		lead := validLead(t)
		before := lead.Timestamp.Add(-time.Minute)
		lead.UpdatedAt = &before
		if err := lead.Validate(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("touch registra instante da mutação", func(t *testing.T) {
		lead := validLead(t)
		now := lead.Timestamp.Add(time.Minute)
		lead.Touch(now)

		if lead.UpdatedAt == nil || !lead.UpdatedAt.Equal(now) {
			t.Errorf("esperava updated_at %v, obteve %v", now, lead.UpdatedAt)
		}
		if err := lead.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})
}
