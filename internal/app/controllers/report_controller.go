package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/services"
	"github.com/placetrack/placetrack/internal/middleware"
)

// ReportController handles dashboard aggregation endpoints. Every endpoint
// accepts the same filter query as the student list so charts always answer
// for the currently visible students.
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetKPIs returns the dashboard headline numbers
// @Summary Dashboard KPIs
// @Description Returns total/placed/eligible/higher-studies counts, average and highest package, placement rate and top company for the filtered students
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.KPIResponse} "KPIs computed"
// @Router /reports/kpis [get]
func (c *ReportController) GetKPIs(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	kpis, err := c.reportService.KPIs(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.KPIResponse{KPIs: *kpis},
		Timestamp: time.Now(),
	})
}

// GetDepartmentBreakdown returns per-department placement statistics
// @Summary Department breakdown
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentReportResponse} "Breakdown computed"
// @Router /reports/departments [get]
func (c *ReportController) GetDepartmentBreakdown(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	stats, err := c.reportService.DepartmentBreakdown(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.DepartmentReportResponse{Departments: stats},
		Timestamp: time.Now(),
	})
}

// GetMonthlyPlacements returns the placements-over-time series
// @Summary Monthly placement trend
// @Description Returns placement counts grouped by month, oldest first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MonthlyReportResponse} "Series computed"
// @Router /reports/monthly [get]
func (c *ReportController) GetMonthlyPlacements(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	months, err := c.reportService.MonthlyPlacements(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MonthlyReportResponse{Months: months},
		Timestamp: time.Now(),
	})
}

// GetTopCompanies returns the ten companies with the most placements
// @Summary Top recruiting companies
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChartResponse} "Chart computed"
// @Router /reports/companies [get]
func (c *ReportController) GetTopCompanies(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	data, err := c.reportService.TopCompanies(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ChartResponse{Data: data},
		Timestamp: time.Now(),
	})
}

// GetPackageDistribution returns placement counts across package buckets
// @Summary Package distribution
// @Description Returns placement counts across fixed package ranges, including empty ranges
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChartResponse} "Chart computed"
// @Router /reports/package-distribution [get]
func (c *ReportController) GetPackageDistribution(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	data, err := c.reportService.PackageDistribution(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ChartResponse{Data: data},
		Timestamp: time.Now(),
	})
}

// GetStatusDistribution returns student counts per placement status
// @Summary Status distribution
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChartResponse} "Chart computed"
// @Router /reports/status-distribution [get]
func (c *ReportController) GetStatusDistribution(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	data, err := c.reportService.StatusDistribution(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ChartResponse{Data: data},
		Timestamp: time.Now(),
	})
}

// GetMentorBreakdown returns per-mentor placement statistics
// @Summary Mentor breakdown
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MentorReportResponse} "Breakdown computed"
// @Router /reports/mentors [get]
func (c *ReportController) GetMentorBreakdown(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	stats, err := c.reportService.MentorBreakdown(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MentorReportResponse{Mentors: stats},
		Timestamp: time.Now(),
	})
}
