// Package errors provides error types and handling for batch upload operations.
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Error represents an upload operation error with context about what failed.
// It wraps the underlying AWS SDK or filesystem error with additional context.
type Error struct {
	// Op is the operation that failed (e.g., "uploadDirectory", "uploadBatch")
	Op string

	// Bucket is the S3 bucket name (if applicable)
	Bucket string

	// Key is the S3 object key (if applicable)
	Key string

	// Err is the underlying error from the AWS SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("s3upload.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("s3upload.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("s3upload.%s object %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("s3upload.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds object key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// Sentinel errors for common batch upload failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("s3upload: invalid input")

	// ErrInvalidConcurrency indicates a non-positive concurrency cap
	ErrInvalidConcurrency = errors.New("s3upload: concurrency cap must be positive")

	// ErrInvalidBucketName indicates that the bucket name is invalid
	ErrInvalidBucketName = errors.New("s3upload: invalid bucket name")

	// ErrInvalidObjectKey indicates that the object key is invalid
	ErrInvalidObjectKey = errors.New("s3upload: invalid object key")

	// ErrNotDirectory indicates that the upload root is not a directory
	ErrNotDirectory = errors.New("s3upload: path is not a directory")

	// ErrBatchFailed indicates that at least one file in a batch failed to upload
	ErrBatchFailed = errors.New("s3upload: batch upload failed")
)

// BatchError is the terminal error of a batch run in which at least one file
// failed. It carries the complete mapping from local file path to the cause
// reported for that path; paths absent from the mapping succeeded.
type BatchError struct {
	// Failures maps each failed local path to its cause.
	Failures map[string]error
}

// NewBatchError creates a BatchError from a non-empty failure mapping.
func NewBatchError(failures map[string]error) *BatchError {
	return &BatchError{Failures: failures}
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	if len(e.Failures) == 1 {
		for path, cause := range e.Failures {
			return fmt.Sprintf("s3upload: 1 file failed: %s: %v", path, cause)
		}
	}
	return fmt.Sprintf("s3upload: %d files failed", len(e.Failures))
}

// Is reports whether target matches the batch-failure sentinel.
func (e *BatchError) Is(target error) bool {
	return target == ErrBatchFailed
}

// Len returns the number of failed files.
func (e *BatchError) Len() int {
	return len(e.Failures)
}

// Cause returns the recorded cause for the given local path, or nil if the
// path succeeded (or was not part of the batch).
func (e *BatchError) Cause(path string) error {
	return e.Failures[path]
}

// Paths returns the failed local paths in sorted order.
func (e *BatchError) Paths() []string {
	paths := make([]string, 0, len(e.Failures))
	for path := range e.Failures {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// IsInvalidInput checks if an error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsBatchFailed checks if an error is an aggregated batch failure.
func IsBatchFailed(err error) bool {
	return errors.Is(err, ErrBatchFailed)
}

// AsBatchError extracts the BatchError from an error chain, if present.
func AsBatchError(err error) (*BatchError, bool) {
	var batchErr *BatchError
	if errors.As(err, &batchErr) {
		return batchErr, true
	}
	return nil, false
}
