package dto

import (
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// FileUpload carries the metadata of one file being uploaded. The file
// contents themselves are handled by the storage backend; only shape
// validation happens in the core.
type FileUpload struct {
	FileName string
	FileType string // MIME type
	FileSize int64  // Bytes
}

// UpdateDocumentRequest defines the fields that can be changed on a document.
// File name, path and upload date are immutable after creation.
type UpdateDocumentRequest struct {
	Category *string `json:"category,omitempty" binding:"omitempty,oneof=identification contract financial other"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	ID         int64     `json:"id"`
	ResidentID int64     `json:"residentId"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	Category   string    `json:"category"`
	UploadDate time.Time `json:"uploadDate"`
	FilePath   string    `json:"filePath"`
}

// UploadResult reports the outcome of one file in a multi-file upload.
type UploadResult struct {
	FileName string            `json:"fileName"`
	Document *DocumentResponse `json:"document,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// DocumentStatsResponse aggregates document counts and storage usage.
type DocumentStatsResponse struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
	ByResident map[int64]int  `json:"byResident"`
	TotalSize  int64          `json:"totalSize"`
}

// DownloadResponse describes a document ready for download.
type DownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
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

// ToDocumentResponses converts a slice of domain.Document to []DocumentResponse
func ToDocumentResponses(documents []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(documents))
	for i, d := range documents {
		res[i] = ToDocumentResponse(&d)
	}
	return res
}

// ToDocumentStatsResponse converts domain.DocumentStats to DocumentStatsResponse DTO
func ToDocumentStatsResponse(s *domain.DocumentStats) DocumentStatsResponse {
	byCategory := make(map[string]int, len(s.ByCategory))
	for c, n := range s.ByCategory {
		byCategory[string(c)] = n
	}
	return DocumentStatsResponse{
		Total:      s.Total,
		ByCategory: byCategory,
		ByResident: s.ByResident,
		TotalSize:  s.TotalSize,
	}
}

// ToDownloadResponse converts domain.DownloadInfo to DownloadResponse DTO
func ToDownloadResponse(d *domain.DownloadInfo) DownloadResponse {
	return DownloadResponse{
		DownloadURL: d.DownloadURL,
		FileName:    d.FileName,
		FileType:    d.FileType,
	}
}
