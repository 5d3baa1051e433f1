package ports

// TokenClaims carrega a identidade embutida em um token de sessão
type TokenClaims struct {
	AdminID string
	Email   string
}

// TokenManager emite e verifica tokens de sessão assinados.
// Os tokens são stateless: não há revogação no servidor, logout é
// descarte do token no cliente.
type TokenManager interface {
	// Generate emite um token assinado para o administrador
	Generate(adminID, email string) (string, error)
	// Verify valida assinatura e expiração e retorna a identidade.
	// Retorna errors.ErrTokenExpired para tokens expirados e
	// errors.ErrInvalidToken para qualquer outra falha.
	Verify(token string) (*TokenClaims, error)
}
