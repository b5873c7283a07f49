package domain

// StyleClassifier infers a character's text decorations from the page's
// annotation quads and vector path objects. Implementations are pure: they
// never fail, hold no state between calls, and ignore degenerate geometry.
type StyleClassifier interface {
	Classify(char CharacterBounds, quads []AnnotationQuad, paths []PathObject) TextDecoration
}

// PageStyler resolves the full text style for every character of a page.
type PageStyler interface {
	StylePage(page PageGeometry) []StyledCharacter
}

// PDFProcessor is the boundary to the native rendering engine for
// document-level operations. Per-character geometry never comes from here; it
// is supplied by the engine's caller.
type PDFProcessor interface {
	ProcessPDF(pdfBytes []byte) ([]string, DocumentMetadata, error)
}

// AuthService validates bearer tokens against the identity provider.
type AuthService interface {
	ValidateToken(token string) (*SupabaseUser, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetStorageBucket() string
	GetClassifierThresholds() ClassifierThresholds
}
