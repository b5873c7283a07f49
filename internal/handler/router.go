package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates the HTTP router with all routes configured. Style routes
// are open: classification is pure computation over request-supplied
// geometry. Document and markup routes require a valid bearer token.
func NewRouter(
	styleHandler *StyleHandler,
	documentHandler *DocumentHandler,
	markupHandler *MarkupHandler,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-style-reader"}`))
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Style routes (open)
	api.HandleFunc("/style/char", styleHandler.ClassifyChar).Methods("POST")
	api.HandleFunc("/style/page", styleHandler.ClassifyPage).Methods("POST")

	// Protected routes (require authentication)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware)

	// Document routes
	protected.HandleFunc("/documents", documentHandler.ListDocuments).Methods("GET")
	protected.HandleFunc("/documents", documentHandler.UploadDocument).Methods("POST")
	protected.HandleFunc("/documents/{id}", documentHandler.GetDocument).Methods("GET")
	protected.HandleFunc("/documents/{id}", documentHandler.DeleteDocument).Methods("DELETE")

	// Markup routes
	protected.HandleFunc("/markups", markupHandler.ListMarkups).Methods("GET")
	protected.HandleFunc("/markups", markupHandler.CreateMarkup).Methods("POST")
	protected.HandleFunc("/markups/{id}", markupHandler.DeleteMarkup).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:4173",
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler(router)
}
