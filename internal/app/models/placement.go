package models

import "time"

// PlacementRecord is a job offer accepted by a student. Each student owns at
// most one record; it is removed only by deleting the owning student or
// reverting the placement.
type PlacementRecord struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	StudentID   int64  `json:"studentId" db:"student_id" example:"1"`
	StudentName string `json:"studentName" db:"student_name" example:"John Doe"` // Denormalized for export
	RollNumber  string `json:"rollNumber" db:"roll_number" example:"CS001"`
	Department  string `json:"department" db:"department" example:"Computer Science"`
	MentorID    int64  `json:"mentorId" db:"mentor_id" example:"2"`
	Company     string `json:"company" db:"company" example:"Acme Corp"`
	// Package is the annual salary in LPA (lakhs per annum)
	Package       float64   `json:"package" db:"package" example:"12.5"`
	PlacementDate string    `json:"placementDate" db:"placement_date" example:"2024-03-01"` // YYYY-MM-DD
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Year returns the 4-digit year of the placement date, or "" when the date
// does not parse.
func (p *PlacementRecord) Year() string {
	t, err := time.Parse("2006-01-02", p.PlacementDate)
	if err != nil {
		return ""
	}
	return t.Format("2006")
}
