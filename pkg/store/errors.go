package store

import "errors"

var (
	ErrInvalidPath   = errors.New("invalid path")
	ErrInvalidConfig = errors.New("invalid configuration")

	ErrObjectNotFound = errors.New("object not found")
	ErrIsDirectory    = errors.New("path is a directory")

	ErrFailedToWrite  = errors.New("failed to write object")
	ErrFailedToRead   = errors.New("failed to read object")
	ErrFailedToDelete = errors.New("failed to delete object")
	ErrFailedToList   = errors.New("failed to list objects")

	// S3-specific errors
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
