package postgresql

import (
	"context"
	"errors"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, email, password_hash, role, status, first_name, middle_name, last_name,
			  birthdate, gender, contact_number, course, school, address, profile_image_path,
			  oauth_provider, oauth_provider_id, hours_to_render, total_rendered_hours,
			  created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.Birthdate,
		&u.Gender,
		&u.ContactNumber,
		&u.Course,
		&u.School,
		&u.Address,
		&u.ProfileImagePath,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.HoursToRender,
		&u.TotalRenderedHours,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO users (email, password_hash, role, status, first_name, middle_name, last_name,
						   birthdate, gender, contact_number, course, school, address,
						   oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, insertQuery,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Status,
		u.FirstName,
		u.MiddleName,
		u.LastName,
		u.Birthdate,
		u.Gender,
		u.ContactNumber,
		u.Course,
		u.School,
		u.Address,
		u.OAuthProvider,
		u.OAuthProviderID,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.QueryRow(ctx, query, email))
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE users
		SET first_name = $1, middle_name = $2, last_name = $3, birthdate = $4, gender = $5,
			contact_number = $6, course = $7, school = $8, address = $9,
			profile_image_path = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, updateQuery,
		u.FirstName,
		u.MiddleName,
		u.LastName,
		u.Birthdate,
		u.Gender,
		u.ContactNumber,
		u.Course,
		u.School,
		u.Address,
		u.ProfileImagePath,
		u.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdateStatus implements user.UserRepository.
func (r *userRepositoryImpl) UpdateStatus(ctx context.Context, id string, status user.AccountStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetHoursTarget implements user.UserRepository.
func (r *userRepositoryImpl) SetHoursTarget(ctx context.Context, id string, hours int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET hours_to_render = $1, updated_at = NOW() WHERE id = $2`, hours, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// AddRenderedHours implements user.UserRepository.
// The arithmetic runs inside the database so concurrent deltas for the
// same user serialize on the row instead of losing updates, and the
// total can never drop below zero.
func (r *userRepositoryImpl) AddRenderedHours(ctx context.Context, id string, delta float64) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE users
		SET total_rendered_hours = GREATEST(total_rendered_hours + $1, 0), updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, updateQuery, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ListByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListByRole(ctx context.Context, role user.Role, status *user.AccountStatus) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1`
	args := []interface{}{role}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListStaff implements user.UserRepository.
func (r *userRepositoryImpl) ListStaff(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + `
		FROM users
		WHERE role IN ('admin', 'supervisor', 'trainer') AND status = 'Approved'
		ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE users
		SET oauth_provider = 'google', oauth_provider_id = $1, updated_at = NOW()
		WHERE email = $2
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, updateQuery, googleID, email))
}
