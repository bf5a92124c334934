package models

import "time"

// Department represents a named academic unit. Inactive departments hide their
// students from default views without deleting data.
type Department struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"name" example:"Computer Science"`
	Code        string    `json:"code" example:"CS"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive" example:"true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ActiveDepartmentNames returns the set of names of active departments,
// as consumed by the filter engine.
func ActiveDepartmentNames(departments []*Department) map[string]struct{} {
	names := make(map[string]struct{}, len(departments))
	for _, d := range departments {
		if d.IsActive {
			names[d.Name] = struct{}{}
		}
	}
	return names
}
