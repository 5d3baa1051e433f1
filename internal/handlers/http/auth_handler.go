package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/handlers/dto"
	"github.com/vipnexus/funil-backend/internal/handlers/middleware"
	"github.com/vipnexus/funil-backend/internal/services"
)

// AuthHandler lida com login e identidade dos administradores
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica um administrador
//
//	@Summary		Login de administrador
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Credenciais"
//	@Success		200			{object}	dto.TokenResponse
//	@Failure		401			{object}	dto.ErrorResponse
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		// Credenciais malformadas recebem a mesma resposta genérica
		// de credenciais inválidas
		response := dto.UnauthorizedErrorResponseI18n(c, errors.ErrInvalidCredentials.Error())
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	admin, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			response := dto.UnauthorizedErrorResponseI18n(c, errors.ErrInvalidCredentials.Error())
			c.JSON(http.StatusUnauthorized, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(admin, token))
}

// Register cria um novo administrador (setup inicial)
//
//	@Summary		Registrar administrador
//	@Description	Usar apenas para o setup inicial do painel
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			admin	body		dto.RegisterAdminRequest	true	"Dados do administrador"
//	@Success		201		{object}	dto.AdminResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Failure		422		{object}	dto.ErrorResponse
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterAdminRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponseI18n(c, err)
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	admin, err := h.authService.Register(c.Request.Context(), services.RegisterAdminInput{
		Email:    req.Email,
		Password: req.Password,
		Nome:     req.Nome,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			response := dto.ConflictErrorResponseI18n(c, errors.ErrEmailAlreadyExists.Error())
			c.JSON(http.StatusConflict, response)
		case errs.Is(err, errors.ErrInvalidEmail):
			response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "email", Message: dto.T(c, errors.ErrInvalidEmail.Error())},
			})
			c.JSON(http.StatusUnprocessableEntity, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminResponse(admin))
}

// Me retorna o administrador autenticado
//
//	@Summary		Administrador atual
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdminResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, errors.ErrInvalidToken.Error())
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminResponse(admin))
}
