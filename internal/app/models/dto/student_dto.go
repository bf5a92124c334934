package dto

import "github.com/placetrack/placetrack/internal/app/models"

// AcademicDetailsPayload represents academic scores in requests and responses
type AcademicDetailsPayload struct {
	TenthPercentage   float64  `json:"tenthPercentage" binding:"min=0,max=100"`
	TwelfthPercentage float64  `json:"twelfthPercentage" binding:"min=0,max=100"`
	UGPercentage      float64  `json:"ugPercentage" binding:"min=0"`
	CGPA              *float64 `json:"cgpa,omitempty" binding:"omitempty,min=0"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	RollNumber       string                 `json:"rollNumber" binding:"required"`
	StudentName      string                 `json:"studentName" binding:"required"`
	Email            string                 `json:"email" binding:"required,email"`
	PersonalEmail    *string                `json:"personalEmail,omitempty" binding:"omitempty,email"`
	MobileNumber     string                 `json:"mobileNumber" binding:"required"`
	Department       string                 `json:"department" binding:"required"`
	Section          string                 `json:"section" binding:"required"`
	MentorID         int64                  `json:"mentorId" binding:"required,gt=0"`
	Gender           *string                `json:"gender,omitempty"`
	DateOfBirth      *string                `json:"dateOfBirth,omitempty"`
	NumberOfBacklogs *int                   `json:"numberOfBacklogs,omitempty" binding:"omitempty,min=0"`
	ResumeLink       *string                `json:"resumeLink,omitempty"`
	PhotoURL         *string                `json:"photoUrl,omitempty"`
	Academic         AcademicDetailsPayload `json:"academicDetails" binding:"required"`
}

// UpdateStudentRequest represents student update data. Status is not
// accepted here: it is derived from academic scores and placement mutations.
type UpdateStudentRequest struct {
	StudentName      string                 `json:"studentName" binding:"required"`
	Email            string                 `json:"email" binding:"required,email"`
	PersonalEmail    *string                `json:"personalEmail,omitempty" binding:"omitempty,email"`
	MobileNumber     string                 `json:"mobileNumber" binding:"required"`
	Department       string                 `json:"department" binding:"required"`
	Section          string                 `json:"section" binding:"required"`
	MentorID         int64                  `json:"mentorId" binding:"required,gt=0"`
	Gender           *string                `json:"gender,omitempty"`
	DateOfBirth      *string                `json:"dateOfBirth,omitempty"`
	NumberOfBacklogs *int                   `json:"numberOfBacklogs,omitempty" binding:"omitempty,min=0"`
	ResumeLink       *string                `json:"resumeLink,omitempty"`
	PhotoURL         *string                `json:"photoUrl,omitempty"`
	HigherStudies    bool                   `json:"higherStudies"`
	Academic         AcademicDetailsPayload `json:"academicDetails" binding:"required"`
}

// StudentResponse represents full student information
type StudentResponse struct {
	ID               int64                  `json:"id"`
	RollNumber       string                 `json:"rollNumber"`
	StudentName      string                 `json:"studentName"`
	Email            string                 `json:"email"`
	PersonalEmail    *string                `json:"personalEmail,omitempty"`
	MobileNumber     string                 `json:"mobileNumber"`
	Department       string                 `json:"department"`
	Section          string                 `json:"section"`
	MentorID         int64                  `json:"mentorId"`
	Gender           *string                `json:"gender,omitempty"`
	DateOfBirth      *string                `json:"dateOfBirth,omitempty"`
	NumberOfBacklogs *int                   `json:"numberOfBacklogs,omitempty"`
	ResumeLink       *string                `json:"resumeLink,omitempty"`
	PhotoURL         *string                `json:"photoUrl,omitempty"`
	Academic         AcademicDetailsPayload `json:"academicDetails"`
	Status           string                 `json:"status"`
	StatusLabel      string                 `json:"statusLabel"`
	PlacementRecord  *PlacementResponse     `json:"placementRecord,omitempty"`
}

// StudentListResponse represents a list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	PaginationInfo
}

// ImportResultResponse summarises a bulk student import
type ImportResultResponse struct {
	ImportedCount int               `json:"importedCount"`
	Students      []StudentResponse `json:"students"`
}

// FromStudent converts a student model to its response representation
func FromStudent(s *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:               s.ID,
		RollNumber:       s.RollNumber,
		StudentName:      s.StudentName,
		Email:            s.Email,
		PersonalEmail:    s.PersonalEmail,
		MobileNumber:     s.MobileNumber,
		Department:       s.Department,
		Section:          s.Section,
		MentorID:         s.MentorID,
		Gender:           s.Gender,
		DateOfBirth:      s.DateOfBirth,
		NumberOfBacklogs: s.NumberOfBacklogs,
		ResumeLink:       s.ResumeLink,
		PhotoURL:         s.PhotoURL,
		Academic: AcademicDetailsPayload{
			TenthPercentage:   s.Academic.TenthPercentage,
			TwelfthPercentage: s.Academic.TwelfthPercentage,
			UGPercentage:      s.Academic.UGPercentage,
			CGPA:              s.Academic.CGPA,
		},
		Status:      string(s.Status),
		StatusLabel: s.Status.Label(),
	}
	if s.PlacementRecord != nil {
		record := FromPlacementRecord(s.PlacementRecord)
		resp.PlacementRecord = &record
	}
	return resp
}

// FromStudents converts a slice of student models
func FromStudents(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		responses = append(responses, FromStudent(s))
	}
	return responses
}
