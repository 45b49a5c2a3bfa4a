package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
	"github.com/flowpro-systems/field_service_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// docTemplateHandler handles HTTP requests for uploaded DOCX templates.
type docTemplateHandler struct {
	templateService portssvc.DocTemplateSvcFacade
}

func newDocTemplateHandler(ts portssvc.DocTemplateSvcFacade) *docTemplateHandler {
	return &docTemplateHandler{
		templateService: ts,
	}
}

// registerDocTemplateRoutes registers all template-related routes.
func registerDocTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.DocTemplateSvcFacade) {
	h := newDocTemplateHandler(templateService)

	templates := rg.Group("/doc-templates")
	{
		templates.POST("", h.createTemplate)
		templates.GET("", h.listTemplates)
		templates.DELETE("/:id", h.deleteTemplate)
	}
}

// createTemplate godoc
// @Summary Upload a document template
// @Description Stores a base64 encoded DOCX template after validating it is a readable package
// @Tags doc-templates
// @Accept  json
// @Produce  json
// @Param   template body dto.CreateDocTemplateRequest true "Template name and base64 content"
// @Success 201 {object} dto.DocTemplateResponse
// @Failure 400 {object} map[string]string "Invalid input or unreadable template content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to store template"
// @Security BearerAuth
// @Router /doc-templates [post]
func (h *docTemplateHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to store template in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store template"})
		return
	}

	logger.Info("Template stored successfully", slog.String("template_id", template.TemplateID))
	c.JSON(http.StatusCreated, dto.ToDocTemplateResponse(template))
}

// listTemplates godoc
// @Summary List document templates
// @Description Retrieves template metadata. Content is never returned, only used server side.
// @Tags doc-templates
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListDocTemplatesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list templates"
// @Security BearerAuth
// @Router /doc-templates [get]
func (h *docTemplateHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocTemplatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list templates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocTemplatesResponse(templates))
}

// deleteTemplate godoc
// @Summary Delete a document template
// @Description Removes a stored template
// @Tags doc-templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to delete template"
// @Security BearerAuth
// @Router /doc-templates/{id} [delete]
func (h *docTemplateHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), templateID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			logger.Error("Failed to delete template in service", slog.String("error", err.Error()), slog.String("template_id", templateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
