package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"pdf-style-reader/internal/domain"
)

// Mock logger shared by service package tests.
type MockLogger struct{}

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}

type mockDocumentRepo struct {
	docs       map[string]*domain.Document
	lastStored *domain.Document
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: make(map[string]*domain.Document)}
}

func (m *mockDocumentRepo) Store(doc *domain.Document, token string) (*domain.Document, error) {
	m.lastStored = doc
	m.docs[doc.ID] = doc
	return doc, nil
}

func (m *mockDocumentRepo) ListByUser(userID string, token string) ([]*domain.Document, error) {
	var out []*domain.Document
	for _, doc := range m.docs {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *mockDocumentRepo) GetByID(userID string, documentID string, token string) (*domain.Document, error) {
	doc, ok := m.docs[documentID]
	if !ok || doc.UserID != userID {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *mockDocumentRepo) Delete(userID string, documentID string, token string) error {
	doc, ok := m.docs[documentID]
	if !ok || doc.UserID != userID {
		return domain.ErrDocumentNotFound
	}
	delete(m.docs, documentID)
	return nil
}

type mockStorage struct {
	lastPath string
	err      error
}

func (m *mockStorage) Upload(ctx context.Context, path string, file io.Reader) error {
	m.lastPath = path
	return m.err
}

type mockProcessor struct {
	pages []string
	meta  domain.DocumentMetadata
	err   error
}

func (m *mockProcessor) ProcessPDF(pdfBytes []byte) ([]string, domain.DocumentMetadata, error) {
	if m.err != nil {
		return nil, domain.DocumentMetadata{}, m.err
	}
	return m.pages, m.meta, nil
}

func TestDocumentService_UploadDocument(t *testing.T) {
	repo := newMockDocumentRepo()
	storage := &mockStorage{}
	processor := &mockProcessor{
		pages: []string{"page one", "page two"},
		meta:  domain.DocumentMetadata{Title: "A Title", Author: "An Author", PageCount: 2},
	}
	svc := NewDocumentService(repo, storage, processor, NewMockLogger())

	doc, err := svc.UploadDocument("user-1", "paper.pdf", []byte("%PDF-1.7 fake"), "token")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected generated document id")
	}
	if doc.Title != "A Title" || doc.Author != "An Author" || doc.PageCount != 2 {
		t.Fatalf("expected metadata to carry through, got %+v", doc)
	}
	if storage.lastPath != "user-1/"+doc.ID+".pdf" {
		t.Fatalf("unexpected storage path %s", storage.lastPath)
	}
	if repo.lastStored != doc {
		t.Fatalf("expected document to be stored")
	}
}

func TestDocumentService_UploadDocument_TitleFallsBackToFileName(t *testing.T) {
	repo := newMockDocumentRepo()
	processor := &mockProcessor{meta: domain.DocumentMetadata{PageCount: 1}}
	svc := NewDocumentService(repo, &mockStorage{}, processor, NewMockLogger())

	doc, err := svc.UploadDocument("user-1", "notes/reading-list.pdf", []byte("%PDF-1.4"), "token")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Title != "reading-list" {
		t.Fatalf("expected title from file name, got %s", doc.Title)
	}
}

func TestDocumentService_UploadDocument_RejectsNonPDF(t *testing.T) {
	svc := NewDocumentService(newMockDocumentRepo(), &mockStorage{}, &mockProcessor{}, NewMockLogger())

	if _, err := svc.UploadDocument("user-1", "a.pdf", []byte("not a pdf"), "token"); !errors.Is(err, domain.ErrInvalidFile) {
		t.Fatalf("expected invalid file error, got %v", err)
	}
	if _, err := svc.UploadDocument("user-1", "a.pdf", nil, "token"); !errors.Is(err, domain.ErrInvalidFile) {
		t.Fatalf("expected invalid file error for empty bytes, got %v", err)
	}
}

func TestDocumentService_UploadDocument_StorageError(t *testing.T) {
	storage := &mockStorage{err: errors.New("bucket unavailable")}
	processor := &mockProcessor{meta: domain.DocumentMetadata{PageCount: 1}}
	svc := NewDocumentService(newMockDocumentRepo(), storage, processor, NewMockLogger())

	if _, err := svc.UploadDocument("user-1", "a.pdf", []byte("%PDF-1.4"), "token"); err == nil {
		t.Fatalf("expected storage error to propagate")
	}
}

func TestDocumentService_GetAndDelete(t *testing.T) {
	repo := newMockDocumentRepo()
	repo.docs["doc-1"] = &domain.Document{ID: "doc-1", UserID: "user-1"}
	svc := NewDocumentService(repo, &mockStorage{}, &mockProcessor{}, NewMockLogger())

	doc, err := svc.GetDocument("user-1", "doc-1", "token")
	if err != nil || doc.ID != "doc-1" {
		t.Fatalf("expected document, got %v %v", doc, err)
	}
	if _, err := svc.GetDocument("user-2", "doc-1", "token"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found for other user, got %v", err)
	}
	if err := svc.DeleteDocument("user-1", "doc-1", "token"); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
}
