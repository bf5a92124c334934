package dto

import "github.com/placetrack/placetrack/internal/app/models"

// PlacementRequest represents placement record creation or update data
type PlacementRequest struct {
	Company       string  `json:"company" binding:"required"`
	Package       float64 `json:"package" binding:"required,gt=0"`
	PlacementDate string  `json:"placementDate" binding:"required,datetime=2006-01-02"`
}

// PlacementResponse represents a placement record
type PlacementResponse struct {
	ID            int64   `json:"id"`
	StudentID     int64   `json:"studentId"`
	StudentName   string  `json:"studentName"`
	RollNumber    string  `json:"rollNumber"`
	Department    string  `json:"department"`
	MentorID      int64   `json:"mentorId"`
	Company       string  `json:"company"`
	Package       float64 `json:"package"`
	PlacementDate string  `json:"placementDate"`
}

// FromPlacementRecord converts a placement record model to its response
// representation
func FromPlacementRecord(r *models.PlacementRecord) PlacementResponse {
	return PlacementResponse{
		ID:            r.ID,
		StudentID:     r.StudentID,
		StudentName:   r.StudentName,
		RollNumber:    r.RollNumber,
		Department:    r.Department,
		MentorID:      r.MentorID,
		Company:       r.Company,
		Package:       r.Package,
		PlacementDate: r.PlacementDate,
	}
}
