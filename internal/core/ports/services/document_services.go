package services

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
)

// UploadProgressFunc reports upload progress as a percentage in [0, 100].
type UploadProgressFunc func(percent float64)

// DocumentReaderSvc defines read operations for document data
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a specific document by its ID.
	GetDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error)

	// ListDocuments retrieves all documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// GetDocumentsByResident retrieves a resident's documents.
	GetDocumentsByResident(ctx context.Context, residentID int64) ([]domain.Document, error)

	// GetDocumentsByCategory retrieves documents in a category.
	GetDocumentsByCategory(ctx context.Context, category domain.DocumentCategory) ([]domain.Document, error)

	// SearchDocuments retrieves documents whose file name or category
	// contains the query, case-insensitively.
	SearchDocuments(ctx context.Context, query string) ([]domain.Document, error)

	// DownloadDocument resolves a document into a download descriptor.
	DownloadDocument(ctx context.Context, documentID int64) (*domain.DownloadInfo, error)

	// GetDocumentStats aggregates counts and storage usage.
	GetDocumentStats(ctx context.Context) (*domain.DocumentStats, error)
}

// DocumentWriterSvc defines write operations for document data
type DocumentWriterSvc interface {
	// UploadFile validates the file (size, type, extension) and persists its
	// record. Progress is reported through onProgress when non-nil.
	UploadFile(ctx context.Context, residentID int64, category domain.DocumentCategory, file dto.FileUpload, onProgress UploadProgressFunc) (*domain.Document, error)

	// UploadMultipleFiles uploads several files, collecting per-file results
	// instead of failing the whole batch on a single bad file.
	UploadMultipleFiles(ctx context.Context, residentID int64, category domain.DocumentCategory, files []dto.FileUpload, onProgress UploadProgressFunc) ([]dto.UploadResult, error)

	// UpdateDocument updates a document's mutable fields.
	UpdateDocument(ctx context.Context, documentID int64, req dto.UpdateDocumentRequest) (*domain.Document, error)

	// DeleteDocument removes a document record.
	DeleteDocument(ctx context.Context, documentID int64) error
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
