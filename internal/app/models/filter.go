package models

// PackageRange bounds the placement package in LPA. Zero means unbounded on
// that side.
type PackageRange struct {
	Min float64 `json:"min" form:"packageMin"`
	Max float64 `json:"max" form:"packageMax"`
}

// DateRange bounds the placement date (YYYY-MM-DD strings). The range is
// active only when both ends are set.
type DateRange struct {
	Start string `json:"start" form:"dateStart"`
	End   string `json:"end" form:"dateEnd"`
}

// FilterOptions is the query value object consumed by the filter engine.
// Every empty/zero field is a wildcard that matches all students.
type FilterOptions struct {
	Department   string       `json:"department" form:"department"`
	Section      string       `json:"section" form:"section"`
	Company      string       `json:"company" form:"company"`
	Year         string       `json:"year" form:"year"`
	Mentor       string       `json:"mentor" form:"mentor"`
	Status       string       `json:"status" form:"status"`
	PackageRange PackageRange `json:"packageRange"`
	DateRange    DateRange    `json:"dateRange"`
	Search       string       `json:"search" form:"search"`
}
