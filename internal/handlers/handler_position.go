package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// positionHandler handles HTTP requests related to project positions.
type positionHandler struct {
	positionService portssvc.PositionSvcFacade
}

// newPositionHandler creates a new positionHandler.
func newPositionHandler(ps portssvc.PositionSvcFacade) *positionHandler {
	return &positionHandler{
		positionService: ps,
	}
}

// RegisterPositionRoutes registers routes related to positions.
func RegisterPositionRoutes(rg *gin.RouterGroup, positionService portssvc.PositionSvcFacade) {
	h := newPositionHandler(positionService)

	positions := rg.Group("/projects/:projectID/positions")
	{
		positions.GET("", h.listPositions)
		positions.PUT("", h.savePositions)
		positions.POST("", h.addPosition)
		positions.PUT("/:positionID", h.updatePosition)
		positions.DELETE("/:positionID", h.deletePosition)
	}
}

// listPositions godoc
// @Summary List project positions
// @Tags positions
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {object} dto.ListPositionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to list positions"
// @Security BearerAuth
// @Router /projects/{projectID}/positions [get]
func (h *positionHandler) listPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	resp, err := h.positionService.ListPositions(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to list positions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// savePositions godoc
// @Summary Replace all positions of a project
// @Description Saves the whole calculation table atomically. Totals are recomputed server-side.
// @Tags positions
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   positions body dto.SavePositionsRequest true "Full position table"
// @Success 200 {array} dto.PositionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Positions are locked by an active invoice"
// @Failure 500 {object} map[string]string "Failed to save positions"
// @Security BearerAuth
// @Router /projects/{projectID}/positions [put]
func (h *positionHandler) savePositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.SavePositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SavePositions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	positions, err := h.positionService.SavePositions(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to save positions")
		return
	}

	c.JSON(http.StatusOK, dto.ToPositionResponses(positions))
}

// addPosition godoc
// @Summary Add a position
// @Tags positions
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   position body dto.PositionInput true "Position"
// @Success 201 {object} dto.PositionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Positions are locked by an active invoice"
// @Failure 500 {object} map[string]string "Failed to add position"
// @Security BearerAuth
// @Router /projects/{projectID}/positions [post]
func (h *positionHandler) addPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.PositionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPosition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	position, err := h.positionService.AddPosition(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to add position")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPositionResponse(*position))
}

// updatePosition godoc
// @Summary Edit a position
// @Description Applies a partial edit; both cached totals are recomputed in the same step
// @Tags positions
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   positionID path string true "Position ID"
// @Param   position body dto.UpdatePositionRequest true "Changed fields"
// @Success 200 {object} dto.PositionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Position not found"
// @Failure 409 {object} map[string]string "Positions are locked by an active invoice"
// @Failure 500 {object} map[string]string "Failed to update position"
// @Security BearerAuth
// @Router /projects/{projectID}/positions/{positionID} [put]
func (h *positionHandler) updatePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")
	positionID := c.Param("positionID")

	var req dto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePosition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	position, err := h.positionService.UpdatePosition(c.Request.Context(), projectID, positionID, req, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID), slog.String("position_id", positionID)), err, "Failed to update position")
		return
	}

	c.JSON(http.StatusOK, dto.ToPositionResponse(*position))
}

// deletePosition godoc
// @Summary Delete a position
// @Tags positions
// @Param   projectID path string true "Project ID"
// @Param   positionID path string true "Position ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Position not found"
// @Failure 409 {object} map[string]string "Positions are locked by an active invoice"
// @Failure 500 {object} map[string]string "Failed to delete position"
// @Security BearerAuth
// @Router /projects/{projectID}/positions/{positionID} [delete]
func (h *positionHandler) deletePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")
	positionID := c.Param("positionID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.positionService.DeletePosition(c.Request.Context(), projectID, positionID, userID); err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID), slog.String("position_id", positionID)), err, "Failed to delete position")
		return
	}

	c.Status(http.StatusNoContent)
}
