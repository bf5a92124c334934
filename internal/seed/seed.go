package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/config"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/auth"
)

// defaultDepartments are created on first startup so imports and manual entry
// have somewhere to land
var defaultDepartments = []models.Department{
	{Name: "Computer Science", Code: "CS"},
	{Name: "Information Technology", Code: "IT"},
	{Name: "Electronics & Communication", Code: "ECE"},
	{Name: "Mechanical Engineering", Code: "ME"},
	{Name: "Civil Engineering", Code: "CE"},
	{Name: "Electrical Engineering", Code: "EE"},
	{Name: "Chemical Engineering", Code: "CHE"},
	{Name: "Biotechnology", Code: "BT"},
}

// CreateDefaultData creates the default departments and the admin account if
// they don't exist yet. Errors are collected so a single duplicate does not
// abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, dept := range defaultDepartments {
		d := dept
		d.IsActive = true
		err := departmentRepo.Create(ctx, &d)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("department", d.Name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createDefaultAdmin(ctx, userRepo, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func createDefaultAdmin(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	_, err := userRepo.GetByUsername(ctx, cfg.Seed.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for admin user")
		return err
	}

	lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Username: cfg.Seed.AdminUsername,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		Name:     "Administrator",
		IsActive: true,
	}

	if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	return nil
}
