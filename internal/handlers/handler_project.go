package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects and their financials.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

// RegisterProjectRoutes registers routes related to projects.
func RegisterProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("/:projectID", h.getProject)
		projects.PATCH("/:projectID/flags", h.updateProjectFlags)
		projects.GET("/:projectID/financials", h.getFinancials)
		projects.POST("/:projectID/financials/preview", h.previewFinancials)
	}
}

// createProject godoc
// @Summary Create a new project
// @Description Creates a translation project with its surcharge flags
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Project number already exists"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Security BearerAuth
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to retrieve project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProjectFlags godoc
// @Summary Toggle project surcharge flags
// @Description Updates certification, apostille, express, classification and copies, then returns the recomputed financials
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   flags body dto.UpdateProjectFlagsRequest true "Flags to change"
// @Success 200 {object} dto.FinancialsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Another submission is in progress"
// @Failure 500 {object} map[string]string "Failed to update flags"
// @Security BearerAuth
// @Router /projects/{projectID}/flags [patch]
func (h *projectHandler) updateProjectFlags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.UpdateProjectFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProjectFlags", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.projectService.UpdateProjectFlags(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to update flags")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getFinancials godoc
// @Summary Get project financials
// @Description Recomputes net, tax, gross, partner cost, margin, paid and open amounts plus the position lock state
// @Tags projects
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {object} dto.FinancialsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to compute financials"
// @Security BearerAuth
// @Router /projects/{projectID}/financials [get]
func (h *projectHandler) getFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	resp, err := h.projectService.GetFinancials(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to compute financials")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// previewFinancials godoc
// @Summary Preview financials for unsaved positions
// @Description Computes the summary for the editor's local positions and flags without saving anything
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   preview body dto.PreviewFinancialsRequest true "Unsaved positions and flags"
// @Success 200 {object} dto.FinancialsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to compute financials"
// @Security BearerAuth
// @Router /projects/{projectID}/financials/preview [post]
func (h *projectHandler) previewFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.PreviewFinancialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewFinancials", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.projectService.PreviewFinancials(c.Request.Context(), projectID, req)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to compute financials")
		return
	}

	c.JSON(http.StatusOK, resp)
}
