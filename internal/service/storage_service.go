package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// StorageService stores uploaded PDF files in object storage.
type StorageService interface {
	Upload(ctx context.Context, path string, file io.Reader) error
}

// SupabaseStorage uploads objects through the Supabase storage HTTP API.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
}

func NewStorageService(baseURL, apiKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  bucket,
	}
}

func (s *SupabaseStorage) Upload(ctx context.Context, path string, file io.Reader) error {
	url := s.baseURL + "/storage/v1/object/" + s.bucket + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, file)
	if err != nil {
		return fmt.Errorf("failed to build storage request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("storage upload failed: status %d", resp.StatusCode)
	}
	return nil
}
