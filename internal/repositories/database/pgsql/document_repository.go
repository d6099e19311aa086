package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	"github.com/hostelhub/hostelhub_backend/internal/models"
	"github.com/hostelhub/hostelhub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for document records.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryWithTx {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

const documentColumns = `id, resident_id, file_name, file_type, file_size, category, upload_date, file_path`

func scanDocument(row pgx.CollectableRow) (models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID,
		&d.ResidentID,
		&d.FileName,
		&d.FileType,
		&d.FileSize,
		&d.Category,
		&d.UploadDate,
		&d.FilePath,
	)
	return d, err
}

// SaveDocument inserts a new document record and returns the generated ID.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) (int64, error) {
	modelDoc := mapping.ToModelDocument(document)

	query := `
		INSERT INTO documents (resident_id, file_name, file_type, file_size, category, upload_date, file_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		modelDoc.ResidentID,
		modelDoc.FileName,
		modelDoc.FileType,
		modelDoc.FileSize,
		modelDoc.Category,
		modelDoc.UploadDate,
		modelDoc.FilePath,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to save document %s: %w", modelDoc.FileName, err)
	}
	return id, nil
}

// FindDocumentByID retrieves a specific document by its ID.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query document %d: %w", documentID, err)
	}

	modelDoc, err := pgx.CollectOneRow(rows, scanDocument)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by id %d: %w", documentID, err)
	}

	domainDoc := mapping.ToDomainDocument(modelDoc)
	return &domainDoc, nil
}

// ListDocuments retrieves all documents, newest upload first.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY upload_date DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	modelDocs, err := pgx.CollectRows(rows, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents: %w", err)
	}

	return mapping.ToDomainDocumentSlice(modelDocs), nil
}

// ListDocumentsByResident retrieves a resident's documents, newest first.
func (r *PgxDocumentRepository) ListDocumentsByResident(ctx context.Context, residentID int64) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE resident_id = $1 ORDER BY upload_date DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents of resident %d: %w", residentID, err)
	}
	defer rows.Close()

	modelDocs, err := pgx.CollectRows(rows, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents of resident %d: %w", residentID, err)
	}

	return mapping.ToDomainDocumentSlice(modelDocs), nil
}

// ListDocumentsByCategory retrieves documents in a category, newest first.
func (r *PgxDocumentRepository) ListDocumentsByCategory(ctx context.Context, category domain.DocumentCategory) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE category = $1 ORDER BY upload_date DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query documents in category %s: %w", category, err)
	}
	defer rows.Close()

	modelDocs, err := pgx.CollectRows(rows, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents in category %s: %w", category, err)
	}

	return mapping.ToDomainDocumentSlice(modelDocs), nil
}

// UpdateDocument updates a document's mutable fields.
func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	modelDoc := mapping.ToModelDocument(document)

	query := `UPDATE documents SET category = $2 WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, modelDoc.ID, modelDoc.Category)
	if err != nil {
		return fmt.Errorf("failed to update document %d: %w", modelDoc.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDocument removes a document record.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID int64) error {
	query := `DELETE FROM documents WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document %d: %w", documentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
