package postgresql

import (
	"context"
	"errors"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/document"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const documentColumns = `d.id, d.owner_id, d.kind, d.title, d.file_path, d.file_size,
			  d.status, d.review_remarks, d.reviewed_by, d.reviewed_at, d.created_at, d.updated_at`

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Kind,
		&d.Title,
		&d.FilePath,
		&d.FileSize,
		&d.Status,
		&d.ReviewRemarks,
		&d.ReviewedBy,
		&d.ReviewedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, err
	}
	return d, nil
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, d document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO documents AS d (owner_id, kind, title, file_path, file_size, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns

	return scanDocument(q.QueryRow(ctx, insertQuery,
		d.OwnerID,
		d.Kind,
		d.Title,
		d.FilePath,
		d.FileSize,
		d.Status,
	))
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents d WHERE d.id = $1`
	return scanDocument(q.QueryRow(ctx, query, id))
}

// Update implements document.DocumentRepository.
func (r *documentRepositoryImpl) Update(ctx context.Context, d document.Document) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE documents
		SET title = $1, status = $2, review_remarks = $3, reviewed_by = $4, reviewed_at = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, updateQuery,
		d.Title,
		d.Status,
		d.ReviewRemarks,
		d.ReviewedBy,
		d.ReviewedAt,
		d.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}

// ListByOwner implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + `
		FROM documents d
		WHERE d.owner_id = $1
		ORDER BY d.created_at DESC`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// ListPending implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListPending(ctx context.Context) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + `,
			  u.first_name || ' ' || u.last_name AS owner_name
		FROM documents d
		JOIN users u ON u.id = d.owner_id
		WHERE d.status = 'Pending'
		ORDER BY d.created_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var d document.Document
		err := rows.Scan(
			&d.ID,
			&d.OwnerID,
			&d.Kind,
			&d.Title,
			&d.FilePath,
			&d.FileSize,
			&d.Status,
			&d.ReviewRemarks,
			&d.ReviewedBy,
			&d.ReviewedAt,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.OwnerName,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
