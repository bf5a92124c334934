package models

import "time"

// AcademicDetails holds a student's academic scores.
// tenth/twelfth are percentages (0-100); ugPercentage and cgpa are on a 0-10
// scale. Import paths receiving 0-100 UG values rescale before storing.
type AcademicDetails struct {
	TenthPercentage   float64  `json:"tenthPercentage" db:"tenth_percentage" example:"85.5"`
	TwelfthPercentage float64  `json:"twelfthPercentage" db:"twelfth_percentage" example:"88.2"`
	UGPercentage      float64  `json:"ugPercentage" db:"ug_percentage" example:"7.58"`
	CGPA              *float64 `json:"cgpa,omitempty" db:"cgpa" example:"7.58"`
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID               int64           `json:"id" db:"id" example:"1"`
	RollNumber       string          `json:"rollNumber" db:"roll_number" example:"CS001"` // Unique human identifier
	StudentName      string          `json:"studentName" db:"student_name" example:"John Doe"`
	Email            string          `json:"email" db:"email" example:"john.doe@college.edu"`
	PersonalEmail    *string         `json:"personalEmail,omitempty" db:"personal_email"`
	MobileNumber     string          `json:"mobileNumber" db:"mobile_number" example:"9876543210"`
	Department       string          `json:"department" db:"department" example:"Computer Science"` // Denormalized department name
	DepartmentID     *int64          `json:"departmentId,omitempty" db:"department_id"`
	Section          string          `json:"section" db:"section" example:"A"`
	MentorID         int64           `json:"mentorId" db:"mentor_id" example:"2"`
	Gender           *string         `json:"gender,omitempty" db:"gender" example:"Male"`
	DateOfBirth      *string         `json:"dateOfBirth,omitempty" db:"date_of_birth" example:"2000-01-15"`
	NumberOfBacklogs *int            `json:"numberOfBacklogs,omitempty" db:"number_of_backlogs"`
	ResumeLink       *string         `json:"resumeLink,omitempty" db:"resume_link"`
	PhotoURL         *string         `json:"photoUrl,omitempty" db:"photo_url"`
	Academic         AcademicDetails `json:"academicDetails"`
	Status           StudentStatus   `json:"status" db:"status" example:"eligible"`
	PlacementRecord  *PlacementRecord `json:"placementRecord,omitempty"` // Present iff Status is "placed"
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}

// PlacementYear returns the 4-digit year of the placement date, or "" when the
// student has no placement record or the date does not parse.
func (s *Student) PlacementYear() string {
	if s.PlacementRecord == nil {
		return ""
	}
	return s.PlacementRecord.Year()
}
