package token

import (
	"errors"
	"testing"
	"time"

	domainerrors "github.com/vipnexus/funil-backend/internal/domain/errors"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", 24*time.Hour)

	t.Run("token emitido é aceito na verificação", func(t *testing.T) {
		tokenString, err := manager.Generate("admin-1", "admin@vipnexus.com")
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		claims, err := manager.Verify(tokenString)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if claims.AdminID != "admin-1" {
			t.Errorf("esperava admin-1, obteve %q", claims.AdminID)
		}
		if claims.Email != "admin@vipnexus.com" {
			t.Errorf("esperava admin@vipnexus.com, obteve %q", claims.Email)
		}
	})

	t.Run("token expirado retorna ErrTokenExpired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Hour)

		tokenString, err := expired.Generate("admin-1", "admin@vipnexus.com")
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		_, err = manager.Verify(tokenString)
		if !errors.Is(err, domainerrors.ErrTokenExpired) {
			t.Errorf("esperava ErrTokenExpired, obteve %v", err)
		}
	})

	t.Run("assinatura de outro secret é rejeitada", func(t *testing.T) {
		other := NewJWTManager("other-secret", 24*time.Hour)

		tokenString, err := other.Generate("admin-1", "admin@vipnexus.com")
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		_, err = manager.Verify(tokenString)
		if !errors.Is(err, domainerrors.ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})

	t.Run("token malformado é rejeitado", func(t *testing.T) {
		for _, tokenString := range []string{"", "abc", "a.b.c"} {
			if _, err := manager.Verify(tokenString); !errors.Is(err, domainerrors.ErrInvalidToken) {
				t.Errorf("esperava ErrInvalidToken para %q, obteve %v", tokenString, err)
			}
		}
	})
}
