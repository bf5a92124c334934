package models

// RoleType represents a user role
type RoleType string

// User roles. Admin is a singleton per deployment; mentors are many.
const (
	RoleAdmin  RoleType = "admin"
	RoleMentor RoleType = "mentor"
)

// StudentStatus is the authoritative placement/eligibility state of a student
type StudentStatus string

const (
	StatusPlaced        StudentStatus = "placed"
	StatusEligible      StudentStatus = "eligible"
	StatusHigherStudies StudentStatus = "higher_studies"
	StatusIneligible    StudentStatus = "ineligible"
)

// statusLabels maps status values to the human-readable names used in reports
var statusLabels = map[StudentStatus]string{
	StatusPlaced:        "Placed",
	StatusEligible:      "Eligible",
	StatusIneligible:    "Ineligible",
	StatusHigherStudies: "Higher Studies",
}

// Label returns the human-readable report name for a status; unknown values pass through
func (s StudentStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsValid reports whether the status is one of the four known states
func (s StudentStatus) IsValid() bool {
	switch s {
	case StatusPlaced, StatusEligible, StatusHigherStudies, StatusIneligible:
		return true
	}
	return false
}
