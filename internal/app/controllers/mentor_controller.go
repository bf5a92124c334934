package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/services"
	"github.com/placetrack/placetrack/internal/middleware"
)

// MentorController handles mentor account endpoints
type MentorController struct {
	mentorService *services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService *services.MentorService) *MentorController {
	return &MentorController{
		mentorService: mentorService,
	}
}

// ListMentors retrieves all mentor accounts
// @Summary List mentors
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MentorListResponse} "Mentors retrieved"
// @Router /mentors [get]
func (c *MentorController) ListMentors(ctx *gin.Context) {
	mentors, err := c.mentorService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(mentors))
	for _, mentor := range mentors {
		responses = append(responses, dto.FromUser(mentor))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MentorListResponse{Mentors: responses},
		Timestamp: time.Now(),
	})
}

// GetMentor retrieves a mentor account by ID
// @Summary Get mentor by ID
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Mentor retrieved"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /mentors/{id} [get]
func (c *MentorController) GetMentor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	mentor, err := c.mentorService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromUser(mentor),
		Timestamp: time.Now(),
	})
}

// CreateMentor creates a new mentor account
// @Summary Create a mentor
// @Description Creates a mentor account with a unique username
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorRequest true "Mentor information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Mentor created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Router /mentors [post]
func (c *MentorController) CreateMentor(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mentor, err := c.mentorService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromUser(mentor),
		Timestamp: time.Now(),
	})
}

// UpdateMentor updates a mentor account
// @Summary Update a mentor
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Param request body dto.UpdateMentorRequest true "Mentor information"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Mentor updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /mentors/{id} [put]
func (c *MentorController) UpdateMentor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mentor, err := c.mentorService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromUser(mentor),
		Timestamp: time.Now(),
	})
}

// DeleteMentor removes a mentor account
// @Summary Delete a mentor
// @Description Deletes a mentor account with no assigned students
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Mentor deleted"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Mentor has assigned students"
// @Router /mentors/{id} [delete]
func (c *MentorController) DeleteMentor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.mentorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Mentor deleted successfully"},
		Timestamp: time.Now(),
	})
}
