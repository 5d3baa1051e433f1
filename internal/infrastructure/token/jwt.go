package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/domain/ports"
)

// claims é o payload JWT do token de sessão
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager com HMAC-SHA256.
// Os tokens são stateless: nada é persistido no servidor.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager cria um novo JWTManager
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate emite um token assinado embutindo id e email do administrador
func (m *JWTManager) Generate(adminID, email string) (string, error) {
	now := time.Now().UTC()

	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(m.secret)
}

// Verify valida assinatura e expiração e extrai a identidade embutida
func (m *JWTManager) Verify(tokenString string) (*ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&claims{},
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	return &ports.TokenClaims{
		AdminID: c.Subject,
		Email:   c.Email,
	}, nil
}
