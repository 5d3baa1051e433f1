package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vipnexus/funil-backend/internal/domain/errors"
	"github.com/vipnexus/funil-backend/internal/handlers/dto"
	"github.com/vipnexus/funil-backend/internal/services"
)

// LeadHandler lida com requisições HTTP relacionadas a leads
type LeadHandler struct {
	leadService *services.LeadService
}

// NewLeadHandler cria um novo LeadHandler
func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// CreateLead cria um novo lead
//
//	@Summary		Criar lead
//	@Description	Registra um lead capturado pela landing page (rota pública)
//	@Tags			leads
//	@Accept			json
//	@Produce		json
//	@Param			lead	body		dto.CreateLeadRequest	true	"Dados do lead"
//	@Success		201		{object}	dto.LeadResponse
//	@Failure		422		{object}	dto.ErrorResponse
//	@Router			/api/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req dto.CreateLeadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponseI18n(c, err)
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), services.CreateLeadInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Fonte:    req.Fonte,
	})
	if err != nil {
		if errs.Is(err, errors.ErrInvalidEmail) {
			response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "email", Message: dto.T(c, errors.ErrInvalidEmail.Error())},
			})
			c.JSON(http.StatusUnprocessableEntity, response)
			return
		}
		var domainErr *errors.DomainError
		if errs.As(err, &domainErr) {
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusUnprocessableEntity, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

// ListLeads lista todos os leads
//
//	@Summary		Listar leads
//	@Description	Retorna todos os leads em ordem de inserção
//	@Tags			leads
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LeadResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadService.List(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponses(leads))
}

// GetLead busca um lead por ID
//
//	@Summary		Detalhar lead
//	@Tags			leads
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do lead"
//	@Success		200	{object}	dto.LeadResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/api/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id := c.Param("id")

	lead, err := h.leadService.Get(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrLeadNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, errors.ErrLeadNotFound.Error())
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// UpdateLead atualiza status/notas de um lead
//
//	@Summary		Atualizar lead
//	@Description	Atualização parcial: apenas os campos enviados são alterados
//	@Tags			leads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID do lead"
//	@Param			lead	body		dto.UpdateLeadRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.LeadResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		422		{object}	dto.ErrorResponse
//	@Router			/api/leads/{id} [patch]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponseI18n(c, err)
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), id, services.UpdateLeadInput{
		Status: req.Status,
		Notas:  req.Notas,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrLeadNotFound):
			response := dto.NotFoundErrorResponseI18n(c, errors.ErrLeadNotFound.Error())
			c.JSON(http.StatusNotFound, response)
		case errs.Is(err, errors.ErrInvalidStatus):
			response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "status", Message: dto.T(c, errors.ErrInvalidStatus.Error())},
			})
			c.JSON(http.StatusUnprocessableEntity, response)
		case errs.Is(err, errors.ErrNothingToUpdate):
			response := dto.BadRequestErrorResponseI18n(c, errors.ErrNothingToUpdate.Error())
			c.JSON(http.StatusBadRequest, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// GetStats retorna as métricas do funil
//
//	@Summary		Estatísticas do funil
//	@Tags			stats
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StatsResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/stats [get]
func (h *LeadHandler) GetStats(c *gin.Context) {
	stats, err := h.leadService.Stats(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
