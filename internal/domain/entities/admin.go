package entities

import (
	"errors"
	"time"

	"github.com/vipnexus/funil-backend/internal/domain/valueobjects"
)

// Admin representa um administrador do painel
type Admin struct {
	ID           string
	Email        valueobjects.Email
	Nome         string
	PasswordHash string
	CreatedAt    time.Time
}

// Validate valida regras de negócio da entidade Admin
func (a *Admin) Validate() error {
	if a.Email.String() == "" {
		return errors.New("email is required")
	}

	if a.Nome == "" {
		return errors.New("nome is required")
	}

	if a.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}
