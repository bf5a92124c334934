package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/services"
	"github.com/placetrack/placetrack/internal/middleware"
)

// PlacementController handles placement record endpoints
type PlacementController struct {
	placementService *services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// CreatePlacement records a placement for a student
// @Summary Record a placement
// @Description Creates the placement record for a student and marks them placed. Ineligible students cannot be placed.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.PlacementRequest true "Placement details"
// @Success 201 {object} dto.APIResponse{data=dto.PlacementResponse} "Placement recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already placed"
// @Failure 422 {object} dto.ErrorResponse "Student not eligible"
// @Router /students/{id}/placement [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.PlacementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.placementService.Create(ctx, id, viewerFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromPlacementRecord(record),
		Timestamp: time.Now(),
	})
}

// UpdatePlacement rewrites a student's placement record
// @Summary Update a placement
// @Description Updates the company, package or date of an existing placement record
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.PlacementRequest true "Placement details"
// @Success 200 {object} dto.APIResponse{data=dto.PlacementResponse} "Placement updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or placement record not found"
// @Router /students/{id}/placement [put]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.PlacementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.placementService.Update(ctx, id, viewerFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromPlacementRecord(record),
		Timestamp: time.Now(),
	})
}

// DeletePlacement removes a student's placement record
// @Summary Delete a placement
// @Description Removes the placement record and recomputes the student's status from their academic scores
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Placement deleted"
// @Failure 404 {object} dto.ErrorResponse "Student or placement record not found"
// @Router /students/{id}/placement [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.placementService.Delete(ctx, id, viewerFromContext(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Placement record deleted successfully"},
		Timestamp: time.Now(),
	})
}
