package generate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitae-backend/internal/documents"
	"vitae-backend/internal/shared/server/respond"
)

const jobDescriptionField = "jobDescription"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

type generateRequest struct {
	ResumeText         string `json:"resumeText"`
	JobDescriptionText string `json:"jobDescriptionText"`
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.POST("/generate/upload", h.generateUpload)
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	content, err := h.Svc.Generate(c.Request.Context(), req.ResumeText, req.JobDescriptionText)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, content)
}

func (h *Handler) generateUpload(c *gin.Context) {
	doc, err := documents.ReadUpload(c, h.MaxUploadBytes)
	if err != nil {
		writeError(c, err)
		return
	}

	content, err := h.Svc.GenerateFromDocument(c.Request.Context(), doc, c.PostForm(jobDescriptionField))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, content)
}

func writeError(c *gin.Context, err error) {
	var completionErr *CompletionServiceError
	switch {
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.As(err, &completionErr):
		respond.Error(c, http.StatusInternalServerError, "completion_failed", completionErr.Error())
	default:
		documents.WriteError(c, err)
	}
}
