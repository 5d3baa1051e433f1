package middleware

import (
	errs "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/handlers/dto"
	"github.com/vipnexus/funil-backend/internal/services"
)

// AdminContextKey é a chave usada para armazenar o admin autenticado
// no contexto do Gin
const AdminContextKey = "current_admin"

// AuthMiddleware valida o bearer token das rotas administrativas
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// RequireAdmin exige um token de sessão válido e resolve o administrador.
// O token vem do header Authorization (Bearer) ou, para a rota de
// websocket, do query param "token" (browsers não enviam headers no
// handshake do WebSocket).
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response := dto.UnauthorizedErrorResponseI18n(c, errors.ErrInvalidToken.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		admin, err := m.authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			messageKey := errors.ErrInvalidToken.Error()
			if errs.Is(err, errors.ErrTokenExpired) {
				messageKey = errors.ErrTokenExpired.Error()
			}
			response := dto.UnauthorizedErrorResponseI18n(c, messageKey)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		c.Set(AdminContextKey, admin)
		c.Next()
	}
}

// CurrentAdmin retorna o administrador autenticado da requisição
func CurrentAdmin(c *gin.Context) (*entities.Admin, bool) {
	value, exists := c.Get(AdminContextKey)
	if !exists {
		return nil, false
	}

	admin, ok := value.(*entities.Admin)
	return admin, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	// A query só vale no handshake de websocket; em rotas REST o token
	// na URL acabaria em logs de acesso
	if websocket.IsWebSocketUpgrade(c.Request) {
		return c.Query("token")
	}

	return ""
}
