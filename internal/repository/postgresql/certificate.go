package postgresql

import (
	"context"
	"errors"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/certificate"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const certificateColumns = `c.id, c.user_id, c.serial_number, c.issued_by, c.issued_at,
			  c.hours_rendered, c.created_at`

type certificateRepositoryImpl struct {
	db *database.DB
}

func NewCertificateRepository(db *database.DB) certificate.CertificateRepository {
	return &certificateRepositoryImpl{db: db}
}

func scanCertificate(row pgx.Row) (certificate.Certificate, error) {
	var c certificate.Certificate
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.SerialNumber,
		&c.IssuedBy,
		&c.IssuedAt,
		&c.HoursRendered,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return certificate.Certificate{}, certificate.ErrCertificateNotFound
		}
		return certificate.Certificate{}, err
	}
	return c, nil
}

// Create implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) Create(ctx context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO certificates AS c (user_id, serial_number, issued_by, issued_at, hours_rendered)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + certificateColumns

	created, err := scanCertificate(q.QueryRow(ctx, insertQuery,
		c.UserID,
		c.SerialNumber,
		c.IssuedBy,
		c.IssuedAt,
		c.HoursRendered,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return certificate.Certificate{}, certificate.ErrAlreadyIssued
		}
		return certificate.Certificate{}, err
	}

	return created, nil
}

// GetByUserID implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) GetByUserID(ctx context.Context, userID string) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + ` FROM certificates c WHERE c.user_id = $1`
	return scanCertificate(q.QueryRow(ctx, query, userID))
}

// GetBySerial implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) GetBySerial(ctx context.Context, serial string) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + ` FROM certificates c WHERE c.serial_number = $1`
	return scanCertificate(q.QueryRow(ctx, query, serial))
}

// List implements certificate.CertificateRepository.
func (r *certificateRepositoryImpl) List(ctx context.Context) ([]certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + `,
			  u.first_name || ' ' || u.last_name AS user_name
		FROM certificates c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.issued_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []certificate.Certificate
	for rows.Next() {
		var c certificate.Certificate
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.SerialNumber,
			&c.IssuedBy,
			&c.IssuedAt,
			&c.HoursRendered,
			&c.CreatedAt,
			&c.UserName,
		)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}
