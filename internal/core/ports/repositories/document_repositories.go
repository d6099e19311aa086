package repositories

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a specific document by its ID.
	FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error)

	// ListDocuments retrieves all documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// ListDocumentsByResident retrieves a resident's documents.
	ListDocumentsByResident(ctx context.Context, residentID int64) ([]domain.Document, error)

	// ListDocumentsByCategory retrieves documents in a category.
	ListDocumentsByCategory(ctx context.Context, category domain.DocumentCategory) ([]domain.Document, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// SaveDocument persists a new document record and returns the generated ID.
	SaveDocument(ctx context.Context, document domain.Document) (int64, error)

	// UpdateDocument updates a document's mutable fields.
	UpdateDocument(ctx context.Context, document domain.Document) error

	// DeleteDocument removes a document record.
	DeleteDocument(ctx context.Context, documentID int64) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// DocumentRepositoryWithTx extends DocumentRepositoryFacade with transaction capabilities
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	TransactionManager
}
