// Package handler contains the HTTP handlers for the leads module.
package handler

import (
	"context"
	"net/http"

	"leaddesk_backend/internal/leads/transport"
	"leaddesk_backend/platform/httpkit"
	"leaddesk_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidRequest = "Invalid request data"

// LeadService defines the service operations the handlers depend on.
type LeadService interface {
	Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error)
	List(ctx context.Context, req transport.ListLeadsRequest) (transport.ListLeadsResponse, error)
	Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (transport.LeadResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Score(ctx context.Context, id uuid.UUID) (transport.ScoreResponse, error)
	AIScore(ctx context.Context, id uuid.UUID) (transport.AIScoreResponse, error)
}

type Handler struct {
	service  LeadService
	validate *validator.Validator
}

func New(service LeadService, validate *validator.Validator) *Handler {
	return &Handler{service: service, validate: validate}
}

// RegisterRoutes mounts the lead endpoints on the given group.
func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/score", h.Score)
	g.GET("/:id/ai-score", h.AIScore)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	lead, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusCreated, lead)
}

func (h *Handler) List(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	lead, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, lead)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	var req transport.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	lead, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, lead)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, transport.DeleteLeadResponse{Message: "Lead deleted successfully"})
}

func (h *Handler) Score(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	resp, err := h.service.Score(c.Request.Context(), id)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) AIScore(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	resp, err := h.service.AIScore(c.Request.Context(), id)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) leadID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return uuid.Nil, false
	}
	return id, true
}
