// Package s3upload provides the batch upload operations.
package s3upload

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/internal/batch"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/internal/scanner"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/internal/validation"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/uploadtypes"
)

const (
	// DefaultContentType is the content type used when detection fails
	DefaultContentType = "application/octet-stream"
)

// UploadDirectory uploads every file beneath localPath to bucket, deriving
// each object's key from prefix and the file's local path. Transfers run
// with at most the configured number in flight at once.
//
// The whole tree is enumerated before any transfer starts; a missing or
// non-directory localPath fails immediately with no files dispatched. Once
// dispatch begins there is no fail-fast: every file runs to completion and
// failures are aggregated.
//
// Returns:
//   - nil if every file uploaded successfully
//   - an error wrapping *errors.BatchError if one or more files failed; the
//     BatchError maps each failed local path to its cause
//   - an immediate error for invalid configuration or enumeration failures
//
// Example:
//
//	err := client.UploadDirectory(ctx, "local/dir", "my-bucket", "uploads/dir",
//	    s3upload.WithMaxConcurrentUploads(10),
//	)
//	if batchErr, ok := errors.AsBatchError(err); ok {
//	    for _, path := range batchErr.Paths() {
//	        log.Printf("failed %s: %v", path, batchErr.Cause(path))
//	    }
//	}
func (c *Client) UploadDirectory(
	ctx context.Context,
	localPath, bucket, prefix string,
	opts ...uploadtypes.UploadOption,
) error {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return err
	}
	if localPath == "" {
		return errors.NewError("uploadDirectory", errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("local path cannot be empty")
	}

	files, err := scanner.NewScanner(c.getFilesystem()).Scan(localPath)
	if err != nil {
		return errors.NewError("uploadDirectory", err).WithBucket(bucket)
	}

	return c.uploadBatch(ctx, "uploadDirectory", files, bucket, prefix, opts)
}

// UploadBatch uploads an already-enumerated list of local file paths to
// bucket with bounded concurrency. Each path's object key is built from
// prefix and the path itself. An empty list resolves as immediate success
// without touching the storage client.
//
// Failure semantics match UploadDirectory: all files run to completion and
// the returned error, if any, wraps a *errors.BatchError carrying the
// complete path-to-cause mapping.
func (c *Client) UploadBatch(
	ctx context.Context,
	paths []string,
	bucket, prefix string,
	opts ...uploadtypes.UploadOption,
) error {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return err
	}

	return c.uploadBatch(ctx, "uploadBatch", paths, bucket, prefix, opts)
}

// uploadBatch builds the work list and drives it through the scheduler.
func (c *Client) uploadBatch(
	ctx context.Context,
	op string,
	paths []string,
	bucket, prefix string,
	opts []uploadtypes.UploadOption,
) error {
	// The client-wide concurrency setting is the default; per-call options
	// override it. An explicit non-positive cap is rejected before dispatch.
	cfg := &uploadtypes.UploadOptionConfig{
		MaxConcurrentUploads: c.getClientConfig().Concurrency,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.MaxConcurrentUploads <= 0 {
		return errors.NewError(op, errors.ErrInvalidConcurrency).WithBucket(bucket)
	}

	files := make([]uploadtypes.LocalFile, 0, len(paths))
	for _, path := range paths {
		key := BuildStorageKey(prefix, path)
		if err := validation.ValidateObjectKey(key); err != nil {
			return err
		}
		files = append(files, uploadtypes.LocalFile{Path: path, Key: key})
	}

	failures, err := batch.Run(ctx, files, cfg.MaxConcurrentUploads,
		func(ctx context.Context, file uploadtypes.LocalFile) error {
			return c.putFile(ctx, bucket, file, cfg)
		})
	if err != nil {
		return errors.NewError(op, err).WithBucket(bucket)
	}

	if len(failures) > 0 {
		return errors.NewError(op, errors.NewBatchError(failures)).WithBucket(bucket)
	}
	return nil
}

// putFile performs one file's transfer: read the whole file, resolve its
// content type, and issue a single PutObject. Read errors count as that
// file's failure cause the same way SDK errors do.
func (c *Client) putFile(
	ctx context.Context,
	bucket string,
	file uploadtypes.LocalFile,
	cfg *uploadtypes.UploadOptionConfig,
) error {
	data, err := c.getFilesystem().ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	contentType := cfg.ContentType
	if contentType == "" {
		contentType = detectContentType(file.Path, data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(file.Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if len(cfg.Metadata) > 0 {
		input.Metadata = cfg.Metadata
	}
	if cfg.StorageClass != "" {
		input.StorageClass = types.StorageClass(cfg.StorageClass)
	}
	if cfg.ACL != "" {
		input.ACL = types.ObjectCannedACL(cfg.ACL)
	}

	if _, err := c.s3Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload: %w", err)
	}
	return nil
}

// detectContentType infers a content type from the file extension, falling
// back to sniffing the content with mimetype for extensionless files.
func detectContentType(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}

	if len(data) > 0 {
		if mt := mimetype.Detect(data); mt != nil {
			return mt.String()
		}
	}

	return DefaultContentType
}
