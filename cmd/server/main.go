package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pdf-style-reader/internal/config"
	"pdf-style-reader/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	if err := container.SupabaseClient.Initialize(); err != nil {
		// Style routes work without Supabase; document and markup routes
		// will reject requests until credentials are configured.
		container.Logger.Warn("Supabase client not initialized", "error", err.Error())
	}

	// Handlers
	styleHandler := handler.NewStyleHandler(
		container.StyleClassifier,
		container.PageStyler,
		container.Logger,
	)

	documentHandler := handler.NewDocumentHandler(
		container.DocumentService,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)

	markupHandler := handler.NewMarkupHandler(
		container.MarkupService,
		container.Logger,
	)

	authMiddleware := handler.NewAuthMiddleware(
		container.AuthService,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		styleHandler,
		documentHandler,
		markupHandler,
		authMiddleware.Middleware,
	)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
