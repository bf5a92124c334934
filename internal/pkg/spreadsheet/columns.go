// Package spreadsheet converts tabular spreadsheet data into student records.
// It resolves inconsistently-named headers to canonical fields, imports rows
// with safe per-cell defaults, and builds template/export workbooks.
package spreadsheet

import "strings"

// Field is a canonical student field addressed by the column mapper.
type Field string

const (
	FieldRollNumber        Field = "rollNumber"
	FieldStudentName       Field = "studentName"
	FieldEmail             Field = "email"
	FieldPersonalEmail     Field = "personalEmail"
	FieldMobileNumber      Field = "mobileNumber"
	FieldDepartment        Field = "department"
	FieldSection           Field = "section"
	FieldGender            Field = "gender"
	FieldDateOfBirth       Field = "dateOfBirth"
	FieldNumberOfBacklogs  Field = "numberOfBacklogs"
	FieldResumeLink        Field = "resumeLink"
	FieldPhotoURL          Field = "photoUrl"
	FieldMentorID          Field = "mentorId"
	FieldTenthPercentage   Field = "tenthPercentage"
	FieldTwelfthPercentage Field = "twelfthPercentage"
	FieldUGPercentage      Field = "ugPercentage"
	FieldCGPA              Field = "cgpa"
	FieldStatus            Field = "status"
	FieldCompany           Field = "company"
	FieldPackage           Field = "package"
	FieldPlacementDate     Field = "placementDate"
)

// fieldAliases pairs a canonical field with its header aliases in priority
// order. Declaration order matters: when two fields could claim the same
// header, the first-declared field wins ("CGPA" can back-fill ugPercentage
// only when no dedicated UG column exists and the cgpa field has not already
// claimed it through an earlier alias of its own).
type fieldAliases struct {
	field   Field
	aliases []string
}

var aliasTable = []fieldAliases{
	{FieldRollNumber, []string{"Roll Number", "Roll No", "Student ID", "ID", "REG NO", "Registration Number"}},
	{FieldStudentName, []string{"Student Name", "Name", "Full Name", "NAME", "STUDENT NAME"}},
	{FieldEmail, []string{"Email", "Email Address", "Official Email", "OFFICIAL MAIL.ID", "College Email"}},
	{FieldPersonalEmail, []string{"Personal Email", "PERSONAL MAIL ID", "Personal Mail"}},
	{FieldMobileNumber, []string{"Mobile Number", "Phone", "Contact", "MOBILE NUMBER", "Phone Number"}},
	{FieldDepartment, []string{"Department", "Dept", "Branch", "DEPARTMENT"}},
	{FieldSection, []string{"Section", "Class"}},
	{FieldGender, []string{"Gender", "Sex", "GENDER"}},
	{FieldDateOfBirth, []string{"Date of Birth", "DOB", "Birth Date"}},
	{FieldNumberOfBacklogs, []string{"Number of Backlogs", "Backlogs", "NO OF BACKLOG", "No of Backlogs"}},
	{FieldResumeLink, []string{"Resume Link", "CV Link", "RESUME LINK", "Resume URL"}},
	{FieldPhotoURL, []string{"Photo URL", "Photo Link", "Image URL"}},
	{FieldMentorID, []string{"Mentor ID", "Mentor"}},
	{FieldTenthPercentage, []string{"10th Percentage", "10th %", "Class 10", "SSC", "Tenth Percentage"}},
	{FieldTwelfthPercentage, []string{"12th Percentage", "12th %", "HSC", "Intermediate", "Twelfth Percentage"}},
	{FieldUGPercentage, []string{"UG Percentage", "UG %", "Graduation", "CGPA", "GPA"}},
	{FieldCGPA, []string{"CGPA", "GPA"}},
	{FieldStatus, []string{"Status", "Placement Status", "STATUS"}},
	{FieldCompany, []string{"Company", "Company Name", "Organisation", "Organization"}},
	{FieldPackage, []string{"Package", "Package (LPA)", "CTC", "Salary"}},
	{FieldPlacementDate, []string{"Placement Date", "Date of Placement", "Offer Date"}},
}

// ColumnMap maps each canonical field to the matched spreadsheet header;
// unmatched fields are absent from the map.
type ColumnMap map[Field]string

// ResolveColumns matches the supplied spreadsheet headers against the alias
// table. Matching is case- and surrounding-whitespace-insensitive, exact
// normalized equality only (no fuzziness). A header claimed by one field is
// never claimed again by another.
func ResolveColumns(headers []string) ColumnMap {
	normalized := make(map[string]string, len(headers)) // normalized -> original
	for _, h := range headers {
		key := normalizeHeader(h)
		if _, exists := normalized[key]; !exists {
			normalized[key] = h
		}
	}

	claimed := make(map[string]struct{}, len(headers))
	result := make(ColumnMap, len(aliasTable))

	for _, entry := range aliasTable {
		for _, alias := range entry.aliases {
			key := normalizeHeader(alias)
			original, ok := normalized[key]
			if !ok {
				continue
			}
			if _, taken := claimed[key]; taken {
				continue
			}
			claimed[key] = struct{}{}
			result[entry.field] = original
			break
		}
	}
	return result
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
