package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/utils/filtering"
)

const defaultMaxUploadSize = 10 << 20 // 10 MiB

// allowedFileTypes is the MIME allowlist for uploads.
var allowedFileTypes = map[string]struct{}{
	"application/pdf":    {},
	"image/jpeg":         {},
	"image/jpg":          {},
	"image/png":          {},
	"image/gif":          {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
}

// dangerousExtensions are rejected regardless of the declared MIME type.
var dangerousExtensions = []string{".exe", ".bat", ".cmd", ".com", ".pif", ".scr", ".vbs", ".js"}

type documentService struct {
	BaseService
	documentRepo  portsrepo.DocumentRepositoryFacade
	maxUploadSize int64
}

// DocumentServiceOption configures optional document service behaviour.
type DocumentServiceOption func(*documentService)

// WithMaxUploadSize overrides the per-file upload size limit.
func WithMaxUploadSize(size int64) DocumentServiceOption {
	return func(s *documentService) {
		s.maxUploadSize = size
	}
}

// NewDocumentService creates a new document service.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, opts ...DocumentServiceOption) portssvc.DocumentSvcFacade {
	s := &documentService{
		documentRepo:  documentRepo,
		maxUploadSize: defaultMaxUploadSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// validateFile checks size, MIME type and extension before any persistence.
func (s *documentService) validateFile(file dto.FileUpload) error {
	if file.FileName == "" {
		return fmt.Errorf("%w: file name is required", apperrors.ErrValidation)
	}
	if file.FileSize <= 0 {
		return fmt.Errorf("%w: file %s is empty", apperrors.ErrValidation, file.FileName)
	}
	if file.FileSize > s.maxUploadSize {
		return fmt.Errorf("%w: file %s exceeds the %d byte limit", apperrors.ErrValidation, file.FileName, s.maxUploadSize)
	}
	if _, ok := allowedFileTypes[strings.ToLower(file.FileType)]; !ok {
		return fmt.Errorf("%w: file type %s is not allowed", apperrors.ErrValidation, file.FileType)
	}
	ext := strings.ToLower(filepath.Ext(file.FileName))
	for _, dangerous := range dangerousExtensions {
		if ext == dangerous {
			return fmt.Errorf("%w: file extension %s is not allowed", apperrors.ErrValidation, ext)
		}
	}
	return nil
}

// UploadFile validates and persists one file record. Progress is reported
// through onProgress when non-nil, ending at 100 only after persistence.
func (s *documentService) UploadFile(ctx context.Context, residentID int64, category domain.DocumentCategory, file dto.FileUpload, onProgress portssvc.UploadProgressFunc) (*domain.Document, error) {
	if !domain.ValidDocumentCategory(category) {
		return nil, fmt.Errorf("%w: unknown document category %q", apperrors.ErrValidation, category)
	}
	if err := s.validateFile(file); err != nil {
		return nil, err
	}

	report := func(percent float64) {
		if onProgress != nil {
			onProgress(percent)
		}
	}
	report(25)

	now := time.Now()
	document := domain.Document{
		ResidentID: residentID,
		FileName:   file.FileName,
		FileType:   file.FileType,
		FileSize:   file.FileSize,
		Category:   category,
		UploadDate: now,
		FilePath:   fmt.Sprintf("/documents/%d_%s", now.UnixNano(), file.FileName),
	}
	report(75)

	id, err := s.documentRepo.SaveDocument(ctx, document)
	if err != nil {
		s.LogError(ctx, err, "failed to save document", "fileName", file.FileName, "residentID", residentID)
		return nil, err
	}
	document.ID = id
	report(100)

	s.LogInfo(ctx, "document uploaded", "documentID", id, "residentID", residentID, "fileName", file.FileName)
	return &document, nil
}

// UploadMultipleFiles uploads a batch of files, collecting per-file outcomes
// instead of failing the whole batch on a single bad file. Overall progress
// spreads each file across an equal share of the range.
func (s *documentService) UploadMultipleFiles(ctx context.Context, residentID int64, category domain.DocumentCategory, files []dto.FileUpload, onProgress portssvc.UploadProgressFunc) ([]dto.UploadResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to upload", apperrors.ErrValidation)
	}

	results := make([]dto.UploadResult, 0, len(files))
	total := float64(len(files))
	for i, file := range files {
		base := float64(i) * 100 / total
		perFile := func(percent float64) {
			if onProgress != nil {
				onProgress(base + percent/total)
			}
		}

		doc, err := s.UploadFile(ctx, residentID, category, file, portssvc.UploadProgressFunc(perFile))
		if err != nil {
			results = append(results, dto.UploadResult{FileName: file.FileName, Error: err.Error()})
			continue
		}
		resp := dto.ToDocumentResponse(doc)
		results = append(results, dto.UploadResult{FileName: file.FileName, Document: &resp})
	}

	return results, nil
}

// GetDocumentByID retrieves a specific document by its ID.
func (s *documentService) GetDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error) {
	return s.documentRepo.FindDocumentByID(ctx, documentID)
}

// ListDocuments retrieves all documents.
func (s *documentService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.documentRepo.ListDocuments(ctx)
}

// GetDocumentsByResident retrieves a resident's documents.
func (s *documentService) GetDocumentsByResident(ctx context.Context, residentID int64) ([]domain.Document, error) {
	return s.documentRepo.ListDocumentsByResident(ctx, residentID)
}

// GetDocumentsByCategory retrieves documents in a category.
func (s *documentService) GetDocumentsByCategory(ctx context.Context, category domain.DocumentCategory) ([]domain.Document, error) {
	if !domain.ValidDocumentCategory(category) {
		return nil, fmt.Errorf("%w: unknown document category %q", apperrors.ErrValidation, category)
	}
	return s.documentRepo.ListDocumentsByCategory(ctx, category)
}

// SearchDocuments retrieves documents whose file name or category contains
// the query, case-insensitively.
func (s *documentService) SearchDocuments(ctx context.Context, query string) ([]domain.Document, error) {
	documents, err := s.documentRepo.ListDocuments(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list documents for search")
		return nil, err
	}

	matched := make([]domain.Document, 0, len(documents))
	for _, d := range documents {
		if filtering.MatchesQuery(query, d.FileName, string(d.Category)) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

// DownloadDocument resolves a document into a download descriptor.
func (s *documentService) DownloadDocument(ctx context.Context, documentID int64) (*domain.DownloadInfo, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return &domain.DownloadInfo{
		DownloadURL: document.FilePath,
		FileName:    document.FileName,
		FileType:    document.FileType,
	}, nil
}

// GetDocumentStats aggregates counts and storage usage across all documents.
func (s *documentService) GetDocumentStats(ctx context.Context) (*domain.DocumentStats, error) {
	documents, err := s.documentRepo.ListDocuments(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list documents for stats")
		return nil, err
	}

	stats := domain.DocumentStats{
		Total:      len(documents),
		ByCategory: make(map[domain.DocumentCategory]int),
		ByResident: make(map[int64]int),
	}
	for _, d := range documents {
		stats.ByCategory[d.Category]++
		stats.ByResident[d.ResidentID]++
		stats.TotalSize += d.FileSize
	}
	return &stats, nil
}

// UpdateDocument updates a document's mutable fields (category only; the
// file itself is immutable after upload).
func (s *documentService) UpdateDocument(ctx context.Context, documentID int64, req dto.UpdateDocumentRequest) (*domain.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		document.Category = domain.DocumentCategory(*req.Category)
	}

	if err := s.documentRepo.UpdateDocument(ctx, *document); err != nil {
		s.LogError(ctx, err, "failed to update document", "documentID", documentID)
		return nil, err
	}

	s.LogInfo(ctx, "document updated", "documentID", documentID)
	return document, nil
}

// DeleteDocument removes a document record.
func (s *documentService) DeleteDocument(ctx context.Context, documentID int64) error {
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		s.LogError(ctx, err, "failed to delete document", "documentID", documentID)
		return err
	}
	s.LogInfo(ctx, "document deleted", "documentID", documentID)
	return nil
}
