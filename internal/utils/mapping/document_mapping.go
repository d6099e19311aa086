package mapping

import (
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		ID:         d.ID,
		ResidentID: d.ResidentID,
		FileName:   d.FileName,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		Category:   string(d.Category),
		UploadDate: d.UploadDate,
		FilePath:   d.FilePath,
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		ID:         m.ID,
		ResidentID: m.ResidentID,
		FileName:   m.FileName,
		FileType:   m.FileType,
		FileSize:   m.FileSize,
		Category:   domain.DocumentCategory(m.Category),
		UploadDate: m.UploadDate,
		FilePath:   m.FilePath,
	}
}

// ToDomainDocumentSlice converts a slice of model Documents to a slice of domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}
