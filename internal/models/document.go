package models

import "time"

// Document represents a document row in the documents table.
type Document struct {
	ID         int64     `db:"id"`
	ResidentID int64     `db:"resident_id"`
	FileName   string    `db:"file_name"`
	FileType   string    `db:"file_type"`
	FileSize   int64     `db:"file_size"`
	Category   string    `db:"category"`
	UploadDate time.Time `db:"upload_date"`
	FilePath   string    `db:"file_path"`
}
