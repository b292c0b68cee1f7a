package charcheck

import "context"

// Document is a checked buffer ready for presentation.
type Document struct {
	Path     string
	Language string // chroma lexer name, empty if unknown
	Result   *Result
}

// Viewer displays a checked document to the user.
type Viewer interface {
	// View displays the document and blocks until the user exits.
	View(ctx context.Context, doc *Document) error
}
