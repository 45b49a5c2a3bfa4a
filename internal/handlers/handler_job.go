package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/docgen"
	"github.com/flowpro-systems/field_service_app/internal/dto"
	"github.com/flowpro-systems/field_service_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// jobHandler handles HTTP requests related to jobs and their documents.
type jobHandler struct {
	jobService      portssvc.JobSvcFacade
	documentService portssvc.DocumentSvcFacade
}

// newJobHandler creates a new jobHandler.
func newJobHandler(js portssvc.JobSvcFacade, ds portssvc.DocumentSvcFacade) *jobHandler {
	return &jobHandler{
		jobService:      js,
		documentService: ds,
	}
}

// RegisterJobRoutes registers all job-related routes.
func RegisterJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade, documentService portssvc.DocumentSvcFacade) {
	h := newJobHandler(jobService, documentService)

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.GET("/:id", h.getJob)
		jobs.PUT("/:id", h.updateJob)
		jobs.POST("/:id/archive", h.archiveJob)
		jobs.GET("/:id/documents/:docType", h.generateDocument)
		jobs.POST("/:id/documents/from-template/:templateID", h.generateFromTemplate)
	}
}

// createJob godoc
// @Summary Create a new job
// @Description Creates a job, optionally linked to a customer, and allocates the next job number
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown customer"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create job"
// @Security BearerAuth
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create job request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create job in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	logger.Info("Job created successfully", slog.String("job_id", job.JobID), slog.Int64("job_number", job.JobNumber))
	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// getJob godoc
// @Summary Get a job by ID
// @Description Retrieves a job with its customer and line items
// @Tags jobs
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to retrieve job"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")

	job, err := h.jobService.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			logger.Error("Failed to get job from service", slog.String("error", err.Error()), slog.String("job_id", jobID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// listJobs godoc
// @Summary List jobs
// @Description Retrieves jobs, optionally filtered by status. Archived jobs are excluded unless requested.
// @Tags jobs
// @Produce  json
// @Param   status query string false "Filter by status" Enums(QUOTE, WORK_ORDER, COMPLETED, UNSUCCESSFUL)
// @Param   includeArchived query bool false "Include archived jobs" default(false)
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListJobsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Security BearerAuth
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJobsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list jobs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobsResponse(jobs))
}

// updateJob godoc
// @Summary Update a job
// @Description Applies a partial update to a job. Providing lineItems replaces the full set.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   job body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to update job"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *jobHandler) updateJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), jobID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update job in service", slog.String("error", err.Error()), slog.String("job_id", jobID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// archiveJob godoc
// @Summary Archive a job
// @Description Archives a job so it drops out of listings and dashboard figures
// @Tags jobs
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to archive job"
// @Security BearerAuth
// @Router /jobs/{id}/archive [post]
func (h *jobHandler) archiveJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.jobService.ArchiveJob(c.Request.Context(), jobID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			logger.Error("Failed to archive job in service", slog.String("error", err.Error()), slog.String("job_id", jobID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive job"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// generateDocument godoc
// @Summary Generate a PDF document for a job
// @Description Composes a branded PDF (quote, work order or tax invoice) for the job and returns it as a download
// @Tags jobs
// @Produce  application/pdf
// @Param   id path string true "Job ID"
// @Param   docType path string true "Document type" Enums(quote, work-order, invoice)
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to generate document"
// @Security BearerAuth
// @Router /jobs/{id}/documents/{docType} [get]
func (h *jobHandler) generateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")
	docType := c.Param("docType")

	artifact, err := h.documentService.GeneratePDF(c.Request.Context(), jobID, docType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			logger.Error("Failed to generate document", slog.String("error", err.Error()), slog.String("job_id", jobID), slog.String("doc_type", docType))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		}
		return
	}

	h.serveArtifact(c, artifact)
}

// generateFromTemplate godoc
// @Summary Fill a DOCX template with job details
// @Description Fills a stored DOCX template with the job's details and returns it as a download
// @Tags jobs
// @Produce  application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param   id path string true "Job ID"
// @Param   templateID path string true "Template ID"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job or template not found"
// @Failure 422 {object} map[string]string "Template content is not a readable DOCX package"
// @Failure 500 {object} map[string]string "Failed to generate document"
// @Security BearerAuth
// @Router /jobs/{id}/documents/from-template/{templateID} [post]
func (h *jobHandler) generateFromTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("id")
	templateID := c.Param("templateID")

	artifact, err := h.documentService.GenerateFromTemplate(c.Request.Context(), jobID, templateID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job or template not found"})
		case errors.Is(err, docgen.ErrTemplateContent):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Template content is not a readable DOCX package"})
		default:
			logger.Error("Failed to fill template", slog.String("error", err.Error()), slog.String("job_id", jobID), slog.String("template_id", templateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		}
		return
	}

	h.serveArtifact(c, artifact)
}

// serveArtifact writes a generated document as an attachment download.
func (h *jobHandler) serveArtifact(c *gin.Context, artifact *docgen.Artifact) {
	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	c.Data(http.StatusOK, artifact.MIME, artifact.Bytes)
}
