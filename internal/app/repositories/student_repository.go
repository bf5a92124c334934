package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/dberrors"
	"github.com/placetrack/placetrack/internal/pkg/logger"
)

// StudentListFilters narrows the student listing at the database level.
// Fine-grained dashboard filtering happens in memory on the returned slice.
type StudentListFilters struct {
	MentorID     int64
	DepartmentID int64
	Status       models.StudentStatus
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentSelectColumns = []string{
	"s.id", "s.roll_number", "s.student_name", "s.email", "s.personal_email",
	"s.mobile_number", "s.department_id", "COALESCE(d.name, '') AS department",
	"s.section", "s.mentor_id", "s.gender", "s.date_of_birth",
	"s.number_of_backlogs", "s.resume_link", "s.photo_url",
	"s.tenth_percentage", "s.twelfth_percentage", "s.ug_percentage", "s.cgpa",
	"s.status", "s.created_at", "s.updated_at",
	"pr.id", "pr.company", "pr.package", "pr.placement_date",
	"pr.created_at", "pr.updated_at",
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(studentSelectColumns...).
		From("students s").
		LeftJoin("departments d ON s.department_id = d.id").
		LeftJoin("placement_records pr ON pr.student_id = s.id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		student     models.Student
		dateOfBirth *time.Time

		recordID      *int64
		company       *string
		pkg           *float64
		placementDate *time.Time
		recordCreated *time.Time
		recordUpdated *time.Time
	)

	err := row.Scan(
		&student.ID,
		&student.RollNumber,
		&student.StudentName,
		&student.Email,
		&student.PersonalEmail,
		&student.MobileNumber,
		&student.DepartmentID,
		&student.Department,
		&student.Section,
		&student.MentorID,
		&student.Gender,
		&dateOfBirth,
		&student.NumberOfBacklogs,
		&student.ResumeLink,
		&student.PhotoURL,
		&student.Academic.TenthPercentage,
		&student.Academic.TwelfthPercentage,
		&student.Academic.UGPercentage,
		&student.Academic.CGPA,
		&student.Status,
		&student.CreatedAt,
		&student.UpdatedAt,
		&recordID,
		&company,
		&pkg,
		&placementDate,
		&recordCreated,
		&recordUpdated,
	)
	if err != nil {
		return nil, err
	}

	if dateOfBirth != nil {
		formatted := dateOfBirth.Format("2006-01-02")
		student.DateOfBirth = &formatted
	}

	if recordID != nil {
		record := &models.PlacementRecord{
			ID:          *recordID,
			StudentID:   student.ID,
			StudentName: student.StudentName,
			RollNumber:  student.RollNumber,
			Department:  student.Department,
			MentorID:    student.MentorID,
		}
		if company != nil {
			record.Company = *company
		}
		if pkg != nil {
			record.Package = *pkg
		}
		if placementDate != nil {
			record.PlacementDate = placementDate.Format("2006-01-02")
		}
		if recordCreated != nil {
			record.CreatedAt = *recordCreated
		}
		if recordUpdated != nil {
			record.UpdatedAt = *recordUpdated
		}
		student.PlacementRecord = record
	}

	return &student, nil
}

// GetAll retrieves students with their placement records, optionally scoped
// at the database level
func (r *StudentRepository) GetAll(ctx context.Context, filters StudentListFilters) ([]*models.Student, error) {
	query := r.selectStudents().OrderBy("s.id")

	where := squirrel.And{}
	if filters.MentorID > 0 {
		where = append(where, squirrel.Eq{"s.mentor_id": filters.MentorID})
	}
	if filters.DepartmentID > 0 {
		where = append(where, squirrel.Eq{"s.department_id": filters.DepartmentID})
	}
	if filters.Status != "" {
		where = append(where, squirrel.Eq{"s.status": filters.Status})
	}
	if len(where) > 0 {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student list SQL")
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID with their placement record
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectStudents().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByRollNumber retrieves a student by roll number
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	sql, args, err := r.selectStudents().Where(squirrel.Eq{"s.roll_number": rollNumber}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

const insertStudentQuery = `
	INSERT INTO students (
		roll_number, student_name, email, personal_email, mobile_number,
		department_id, section, mentor_id, gender, date_of_birth,
		number_of_backlogs, resume_link, photo_url,
		tenth_percentage, twelfth_percentage, ug_percentage, cgpa, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	RETURNING id, created_at, updated_at
`

const bulkInsertStudentQuery = `
	INSERT INTO students (
		roll_number, student_name, email, personal_email, mobile_number,
		department_id, section, mentor_id, gender, date_of_birth,
		number_of_backlogs, resume_link, photo_url,
		tenth_percentage, twelfth_percentage, ug_percentage, cgpa, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	ON CONFLICT (roll_number) DO NOTHING
	RETURNING id, created_at, updated_at
`

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, insertStudentQuery, studentInsertArgs(student)...).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_roll_number_key") {
			return apperrors.ErrRollNumberAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMentorNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update updates an existing student. The placement record is managed
// separately through the placement repository.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET student_name = $1, email = $2, personal_email = $3, mobile_number = $4,
			department_id = $5, section = $6, mentor_id = $7, gender = $8,
			date_of_birth = $9, number_of_backlogs = $10, resume_link = $11,
			photo_url = $12, tenth_percentage = $13, twelfth_percentage = $14,
			ug_percentage = $15, cgpa = $16, status = $17, updated_at = NOW()
		WHERE id = $18
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.StudentName, student.Email, student.PersonalEmail, student.MobileNumber,
		student.DepartmentID, student.Section, student.MentorID, student.Gender,
		nullDate(student.DateOfBirth), student.NumberOfBacklogs, student.ResumeLink,
		student.PhotoURL, student.Academic.TenthPercentage, student.Academic.TwelfthPercentage,
		student.Academic.UGPercentage, student.Academic.CGPA, student.Status, student.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMentorNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateStatus changes only the student's status
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status models.StudentStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student. The placement record goes with it via the
// foreign key cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// CountByMentor returns the number of students assigned to a mentor
func (r *StudentRepository) CountByMentor(ctx context.Context, mentorID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE mentor_id = $1`, mentorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// BulkCreate inserts imported students and their placement records in one
// transaction. Rows whose roll number already exists are skipped. Returns
// the number of students actually inserted.
func (r *StudentRepository) BulkCreate(ctx context.Context, students []*models.Student) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error starting import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, student := range students {
		err := tx.QueryRow(ctx, bulkInsertStudentQuery, studentInsertArgs(student)...).
			Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				logger.Warn().Str("rollNumber", student.RollNumber).Msg("Skipping duplicate roll number during import")
				continue
			}
			return 0, fmt.Errorf("error importing student %s: %w", student.RollNumber, err)
		}
		inserted++

		if record := student.PlacementRecord; record != nil {
			record.StudentID = student.ID
			err := tx.QueryRow(ctx, `
				INSERT INTO placement_records (student_id, company, package, placement_date)
				VALUES ($1, $2, $3, $4)
				RETURNING id, created_at, updated_at`,
				record.StudentID, record.Company, record.Package, record.PlacementDate,
			).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
			if err != nil {
				return 0, fmt.Errorf("error importing placement record for %s: %w", student.RollNumber, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing import transaction: %w", err)
	}

	return inserted, nil
}

func studentInsertArgs(student *models.Student) []interface{} {
	return []interface{}{
		student.RollNumber, student.StudentName, student.Email, student.PersonalEmail,
		student.MobileNumber, student.DepartmentID, student.Section, student.MentorID,
		student.Gender, nullDate(student.DateOfBirth), student.NumberOfBacklogs,
		student.ResumeLink, student.PhotoURL, student.Academic.TenthPercentage,
		student.Academic.TwelfthPercentage, student.Academic.UGPercentage,
		student.Academic.CGPA, student.Status,
	}
}

// nullDate parses a YYYY-MM-DD string pointer for a DATE column; nil or
// unparseable values become NULL.
func nullDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil
	}
	return &t
}
