package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/dberrors"
)

// PlacementRepository handles database operations for placement records.
// Each student has at most one record, enforced by a unique student_id.
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
	}
}

// GetByStudentID retrieves the placement record for a student
func (r *PlacementRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.PlacementRecord, error) {
	query := `
		SELECT pr.id, pr.student_id, pr.company, pr.package, pr.placement_date,
			pr.created_at, pr.updated_at
		FROM placement_records pr
		WHERE pr.student_id = $1
	`

	var (
		record        models.PlacementRecord
		placementDate time.Time
	)
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&record.ID,
		&record.StudentID,
		&record.Company,
		&record.Package,
		&placementDate,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotPlaced
		}
		return nil, fmt.Errorf("error retrieving placement record: %w", err)
	}

	record.PlacementDate = placementDate.Format("2006-01-02")
	return &record, nil
}

// Create inserts a placement record for a student
func (r *PlacementRepository) Create(ctx context.Context, record *models.PlacementRecord) error {
	query := `
		INSERT INTO placement_records (student_id, company, package, placement_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.Company, record.Package, record.PlacementDate,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "placement_records_student_id_key") {
			return apperrors.ErrStudentAlreadyPlaced
		}
		return fmt.Errorf("error creating placement record: %w", err)
	}

	return nil
}

// Update rewrites the placement record of a student
func (r *PlacementRepository) Update(ctx context.Context, record *models.PlacementRecord) error {
	query := `
		UPDATE placement_records
		SET company = $1, package = $2, placement_date = $3, updated_at = NOW()
		WHERE student_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		record.Company, record.Package, record.PlacementDate, record.StudentID)
	if err != nil {
		return fmt.Errorf("error updating placement record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotPlaced
	}

	return nil
}

// DeleteByStudentID removes the placement record of a student
func (r *PlacementRepository) DeleteByStudentID(ctx context.Context, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM placement_records WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting placement record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotPlaced
	}

	return nil
}
