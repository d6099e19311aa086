package domain

import "time"

// DocumentCategory classifies an uploaded resident document.
type DocumentCategory string

const (
	DocumentIdentification DocumentCategory = "identification"
	DocumentContract       DocumentCategory = "contract"
	DocumentFinancial      DocumentCategory = "financial"
	DocumentOther          DocumentCategory = "other"
)

// ValidDocumentCategory reports whether c is a known document category.
func ValidDocumentCategory(c DocumentCategory) bool {
	switch c {
	case DocumentIdentification, DocumentContract, DocumentFinancial, DocumentOther:
		return true
	}
	return false
}

// Document is a file stored against a resident. FilePath is an opaque
// storage locator; the file contents are owned by the storage backend.
type Document struct {
	ID         int64            `json:"id"`
	ResidentID int64            `json:"residentId"` // FK -> residents.id
	FileName   string           `json:"fileName"`
	FileType   string           `json:"fileType"` // MIME type
	FileSize   int64            `json:"fileSize"` // Bytes, <= 10 MiB
	Category   DocumentCategory `json:"category"`
	UploadDate time.Time        `json:"uploadDate"`
	FilePath   string           `json:"filePath"`
}

// DocumentStats aggregates document counts and storage usage.
type DocumentStats struct {
	Total      int                      `json:"total"`
	ByCategory map[DocumentCategory]int `json:"byCategory"`
	ByResident map[int64]int            `json:"byResident"`
	TotalSize  int64                    `json:"totalSize"`
}

// DownloadInfo describes a document ready for download.
type DownloadInfo struct {
	DownloadURL string `json:"downloadUrl"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
}
