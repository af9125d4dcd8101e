package docres

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNoTemplates indicates the manager was constructed without any
	// template bundle names.
	ErrNoTemplates = errors.New("at least one template name is required")

	// ErrInvalidBaseDir indicates the configured base directory does not
	// exist or is not a directory.
	ErrInvalidBaseDir = errors.New("invalid base directory")

	// ErrOutputDirRequired indicates an export was requested without an
	// output directory.
	ErrOutputDirRequired = errors.New("output directory is required")

	// ErrInvalidFilter indicates a malformed filter pattern.
	ErrInvalidFilter = errors.New("invalid filter pattern")

	// ErrSetClosed indicates an operation on a ResourceSet after it was closed.
	ErrSetClosed = errors.New("resource set is closed")
)
