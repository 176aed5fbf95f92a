package driven

import "context"

// OpenOptions controls how a document is handed to a viewer.
type OpenOptions struct {
	// DisplayName is shown by the viewer or chooser.
	DisplayName string

	// MIMEType hints which applications can open the file.
	MIMEType string

	// ShowChooser lets the OS present an application chooser.
	ShowChooser bool
}

// Viewer hands a stored document to an external application.
// Implementations should return domain.ErrNoViewer when no application
// can open the file, and wrap os.ErrPermission or os.ErrNotExist where
// those apply.
type Viewer interface {
	// Open asks the OS to open the file at path.
	Open(ctx context.Context, path string, opts OpenOptions) error
}
