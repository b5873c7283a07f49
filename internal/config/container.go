package config

import (
	"pdf-style-reader/internal/domain"
	"pdf-style-reader/internal/infra/supabase"
	"pdf-style-reader/internal/repository"
	"pdf-style-reader/internal/service"
	"pdf-style-reader/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config             domain.Config
	Logger             domain.Logger
	SupabaseClient     domain.SupabaseClient
	DocumentRepository domain.DocumentRepository
	MarkupRepository   domain.MarkupRepository
	StyleClassifier    domain.StyleClassifier
	PageStyler         domain.PageStyler
	DocumentService    domain.DocumentService
	MarkupService      domain.MarkupService
	AuthService        domain.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(config, appLogger)

	// Initialize repositories
	documentRepo := repository.NewDocumentRepository(supabaseClient, appLogger)
	markupRepo := repository.NewMarkupRepository(supabaseClient, appLogger)

	// Initialize services
	classifier := service.NewStyleClassifier(config.GetClassifierThresholds())
	pageStyler := service.NewPageStyleService(classifier, appLogger)
	storage := service.NewStorageService(
		config.GetSupabaseURL(),
		config.GetSupabaseKey(),
		config.GetStorageBucket(),
	)
	processor := service.NewPDFProcessor(appLogger)
	documentService := service.NewDocumentService(documentRepo, storage, processor, appLogger)
	markupService := service.NewMarkupService(markupRepo, appLogger)
	authService := service.NewAuthService(supabaseClient, appLogger)

	return &Container{
		Config:             config,
		Logger:             appLogger,
		SupabaseClient:     supabaseClient,
		DocumentRepository: documentRepo,
		MarkupRepository:   markupRepo,
		StyleClassifier:    classifier,
		PageStyler:         pageStyler,
		DocumentService:    documentService,
		MarkupService:      markupService,
		AuthService:        authService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSupabaseClient returns the Supabase client instance
func (c *Container) GetSupabaseClient() domain.SupabaseClient {
	return c.SupabaseClient
}
