package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/middleware"
	"github.com/placetrack/placetrack/internal/pkg/filtering"
	"github.com/placetrack/placetrack/internal/pkg/logger"
)

// viewerFromContext builds the filter viewer from the authenticated request.
// The scoping toggles come from query parameters so the dashboard can switch
// views without re-authenticating.
func viewerFromContext(c *gin.Context) filtering.Viewer {
	return filtering.Viewer{
		Role:                    middleware.Role(c),
		ID:                      middleware.UserID(c),
		MyStudentsOnly:          c.Query("myStudentsOnly") == "true",
		ShowInactiveDepartments: c.Query("showInactiveDepartments") == "true",
	}
}

// bindFilterOptions reads the dashboard filter query
func bindFilterOptions(c *gin.Context) (models.FilterOptions, bool) {
	var query models.FilterOptions
	if err := c.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters").
			WithDetails(err.Error())
		c.JSON(400, dto.NewErrorResponse(errorDetail))
		return query, false
	}
	return query, true
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithDetails(name + " must be a positive number")
		c.JSON(400, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// serveWorkbook streams an xlsx workbook as a download
func serveWorkbook(c *gin.Context, workbook *excelize.File, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		logger.Error().Err(err).Str("file", filename).Msg("Failed to stream workbook")
	}
}
