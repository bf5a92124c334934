package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/pkg/eligibility"
)

// Row is one spreadsheet row keyed by its original header.
type Row map[string]string

// Importer converts raw spreadsheet rows into validated student records.
// Import is "safe": a malformed cell gets a default value, never an error, so
// one bad row cannot abort a bulk upload.
type Importer struct {
	departments []*models.Department
	mentors     []*models.User

	now func() time.Time
}

// NewImporter creates an importer resolving departments and mentor defaults
// against the given collections.
func NewImporter(departments []*models.Department, mentors []*models.User) *Importer {
	return &Importer{
		departments: departments,
		mentors:     mentors,
		now:         time.Now,
	}
}

// ImportRows converts every row into a student record. The result always has
// one student per input row.
func (imp *Importer) ImportRows(rows []Row, headers []string) []*models.Student {
	columns := ResolveColumns(headers)
	students := make([]*models.Student, 0, len(rows))
	for i, row := range rows {
		students = append(students, imp.importRow(row, columns, i))
	}
	return students
}

func (imp *Importer) importRow(row Row, columns ColumnMap, index int) *models.Student {
	get := func(field Field) string {
		header, ok := columns[field]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row[header])
	}

	rollNumber := get(FieldRollNumber)
	if rollNumber == "" {
		// Timestamp plus row index keeps generated roll numbers unique
		// within and across imports.
		rollNumber = fmt.Sprintf("IMP%d-%d", imp.now().UnixMilli(), index+1)
	}

	section := get(FieldSection)
	if section == "" {
		section = "A"
	}

	mentorID := imp.resolveMentor(get(FieldMentorID))

	tenth := parseFloat(get(FieldTenthPercentage))
	twelfth := parseFloat(get(FieldTwelfthPercentage))
	ug := eligibility.NormalizeTenScale(parseFloat(get(FieldUGPercentage)))

	var cgpa *float64
	if raw := get(FieldCGPA); raw != "" {
		value := eligibility.NormalizeTenScale(parseFloat(raw))
		cgpa = &value
	}

	academic := models.AcademicDetails{
		TenthPercentage:   tenth,
		TwelfthPercentage: twelfth,
		UGPercentage:      ug,
		CGPA:              cgpa,
	}

	student := &models.Student{
		RollNumber:   rollNumber,
		StudentName:  get(FieldStudentName),
		Email:        get(FieldEmail),
		MobileNumber: get(FieldMobileNumber),
		Department:   imp.resolveDepartment(get(FieldDepartment)),
		Section:      section,
		MentorID:     mentorID,
		Academic:     academic,
		Status:       imp.resolveStatus(get(FieldStatus), academic),
	}

	if v := get(FieldPersonalEmail); v != "" {
		student.PersonalEmail = &v
	}
	if v := normalizeGender(get(FieldGender)); v != "" {
		student.Gender = &v
	}
	if v := parseDate(get(FieldDateOfBirth)); v != "" {
		student.DateOfBirth = &v
	}
	if raw := get(FieldNumberOfBacklogs); raw != "" {
		backlogs := int(parseFloat(raw))
		if backlogs < 0 {
			backlogs = 0
		}
		student.NumberOfBacklogs = &backlogs
	}
	if v := get(FieldResumeLink); v != "" {
		student.ResumeLink = &v
	}
	// Photo URLs are deliberately not populated from bulk imports; photos are
	// uploaded individually per student.

	if student.Status == models.StatusPlaced {
		student.PlacementRecord = imp.buildPlacementRecord(student, get)
		if student.PlacementRecord == nil {
			// A placed status without company and package degrades to the
			// computed eligibility so the placed<=>record invariant holds.
			student.Status = eligibility.ClassifyStudent(academic)
		}
	}

	return student
}

// resolveStatus honors an explicit placed/higher_studies status column value
// only when the classifier does not force ineligible; everything else falls
// back to the computed eligibility.
func (imp *Importer) resolveStatus(raw string, academic models.AcademicDetails) models.StudentStatus {
	computed := eligibility.ClassifyStudent(academic)
	if computed == models.StatusIneligible {
		return models.StatusIneligible
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "placed":
		return models.StatusPlaced
	case "higher_studies", "higher studies":
		return models.StatusHigherStudies
	}
	return computed
}

func (imp *Importer) buildPlacementRecord(student *models.Student, get func(Field) string) *models.PlacementRecord {
	company := get(FieldCompany)
	pkg := parseFloat(get(FieldPackage))
	if company == "" || pkg <= 0 {
		return nil
	}

	date := parseDate(get(FieldPlacementDate))
	if date == "" {
		date = imp.now().Format("2006-01-02")
	}

	return &models.PlacementRecord{
		StudentName:   student.StudentName,
		RollNumber:    student.RollNumber,
		Department:    student.Department,
		MentorID:      student.MentorID,
		Company:       company,
		Package:       pkg,
		PlacementDate: date,
	}
}

// resolveMentor parses a mentor id cell, falling back to the first available
// mentor when absent or unknown.
func (imp *Importer) resolveMentor(raw string) int64 {
	if raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			for _, m := range imp.mentors {
				if m.ID == id {
					return id
				}
			}
		}
		// Also accept a mentor username or name in the mentor column
		for _, m := range imp.mentors {
			if strings.EqualFold(m.Username, raw) || strings.EqualFold(m.Name, raw) {
				return m.ID
			}
		}
	}
	if len(imp.mentors) > 0 {
		return imp.mentors[0].ID
	}
	return 0
}

// departmentVariants maps standard department names to common spreadsheet
// spellings.
var departmentVariants = map[string][]string{
	"Computer Science":              {"cs", "cse", "computer science", "computer science and engineering", "comp sci"},
	"Electronics and Communication": {"ece", "electronics", "electronics and communication", "electronics and communication engineering"},
	"Mechanical Engineering":        {"me", "mech", "mechanical", "mechanical engineering"},
	"Civil Engineering":             {"ce", "civil", "civil engineering"},
	"Electrical Engineering":        {"ee", "electrical", "electrical engineering"},
	"Information Technology":        {"it", "info tech", "information technology"},
	"Chemical Engineering":          {"che", "chemical", "chemical engineering"},
	"Biotechnology":                 {"bt", "biotech", "biotechnology"},
	"Aerospace Engineering":         {"ae", "aerospace", "aerospace engineering"},
	"Automobile Engineering":        {"auto", "automobile", "automobile engineering"},
}

// resolveDepartment matches a raw imported department string against the
// available departments: exact case-insensitive match first, then known
// variants, then substring match, finally the first available department.
func (imp *Importer) resolveDepartment(raw string) string {
	if len(imp.departments) == 0 {
		return raw
	}
	if raw == "" {
		return imp.departments[0].Name
	}

	lowered := strings.ToLower(strings.TrimSpace(raw))

	for _, d := range imp.departments {
		if strings.ToLower(d.Name) == lowered {
			return d.Name
		}
	}

	for standard, variants := range departmentVariants {
		for _, v := range variants {
			if v != lowered {
				continue
			}
			for _, d := range imp.departments {
				if containsEitherFold(d.Name, standard) {
					return d.Name
				}
			}
		}
	}

	for _, d := range imp.departments {
		if containsEitherFold(d.Name, raw) {
			return d.Name
		}
	}

	return imp.departments[0].Name
}

func containsEitherFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(strings.TrimSpace(b))
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func normalizeGender(raw string) string {
	switch strings.ToLower(raw) {
	case "male", "m":
		return "Male"
	case "female", "f":
		return "Female"
	case "other":
		return "Other"
	}
	return ""
}

// parseFloat parses a numeric cell; malformed values become 0.
func parseFloat(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
