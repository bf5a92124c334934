package dto

import "github.com/placetrack/placetrack/internal/pkg/analytics"

// KPIResponse wraps the dashboard headline numbers
type KPIResponse struct {
	KPIs analytics.KPIData `json:"kpis"`
}

// DepartmentReportResponse represents per-department placement statistics
type DepartmentReportResponse struct {
	Departments []analytics.DepartmentStats `json:"departments"`
}

// MonthlyReportResponse represents the placements-over-time series
type MonthlyReportResponse struct {
	Months []analytics.MonthlyPlacement `json:"months"`
}

// ChartResponse represents a generic name/value chart series
type ChartResponse struct {
	Data []analytics.ChartData `json:"data"`
}

// MentorReportResponse represents per-mentor placement statistics
type MentorReportResponse struct {
	Mentors []analytics.MentorStats `json:"mentors"`
}
