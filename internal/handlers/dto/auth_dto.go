package dto

import (
	"github.com/vipnexus/funil-backend/internal/domain/entities"
)

// LoginRequest representa a requisição de login do painel
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterAdminRequest representa o registro de um administrador
// (rota de setup inicial)
type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Nome     string `json:"nome" binding:"required,min=2,max=100"`
}

// AdminResponse representa um administrador autenticado
type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

// TokenResponse representa a resposta de login bem-sucedido
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        AdminResponse `json:"user"`
}

// ToAdminResponse converte uma entidade Admin para AdminResponse
func ToAdminResponse(admin *entities.Admin) AdminResponse {
	return AdminResponse{
		ID:    admin.ID,
		Email: admin.Email.String(),
		Nome:  admin.Nome,
	}
}

// ToTokenResponse monta a resposta de login
func ToTokenResponse(admin *entities.Admin, token string) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        ToAdminResponse(admin),
	}
}
