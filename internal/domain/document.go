package domain

import "time"

// Document is a stored PDF document's record. The file itself lives in object
// storage; only extracted metadata is kept here.
type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	PageCount int       `json:"page_count"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentMetadata is what the engine reports about a PDF file.
type DocumentMetadata struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	PageCount int    `json:"page_count"`
}

// DocumentRepository defines persistence operations for documents.
type DocumentRepository interface {
	Store(document *Document, token string) (*Document, error)
	ListByUser(userID string, token string) ([]*Document, error)
	GetByID(userID string, documentID string, token string) (*Document, error)
	Delete(userID string, documentID string, token string) error
}

// DocumentService defines the use-case operations for documents.
type DocumentService interface {
	UploadDocument(userID string, fileName string, pdfBytes []byte, token string) (*Document, error)
	ListDocuments(userID string, token string) ([]*Document, error)
	GetDocument(userID string, documentID string, token string) (*Document, error)
	DeleteDocument(userID string, documentID string, token string) error
}
