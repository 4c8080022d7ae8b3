// Package s3upload provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package s3upload

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/uploadtypes"
)

// WithRegion sets the AWS region for upload operations.
// If not specified, uses the default AWS region from the credential chain.
func WithRegion(region string) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		c.Region = region
	}
}

// WithMaxRetries sets the maximum number of SDK retry attempts for failed requests.
// Default is 3 retries. Set to 0 to disable retries.
func WithMaxRetries(maxRetries int) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		c.MaxRetries = maxRetries
	}
}

// WithTimeout sets the timeout for individual S3 requests.
// Default is no timeout (0). Values should be positive durations.
func WithTimeout(timeout time.Duration) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		c.Timeout = timeout
	}
}

// WithConcurrency sets the client-wide default concurrency cap for batch uploads.
// Default is 5 concurrent transfers. Per-call WithMaxConcurrentUploads overrides it.
func WithConcurrency(concurrency int) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		if concurrency > 0 {
			c.Concurrency = concurrency
		}
	}
}

// WithEndpoint sets a custom S3 endpoint URL.
// This is useful for S3-compatible services or local testing with LocalStack.
func WithEndpoint(endpoint string) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithForcePathStyle forces the use of path-style URLs instead of virtual-hosted style.
// This is required for S3-compatible services that don't support virtual hosting.
// Default is false (uses virtual-hosted style).
func WithForcePathStyle(forcePathStyle bool) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		c.ForcePathStyle = forcePathStyle
	}
}

// WithAWSConfig allows providing a custom AWS configuration.
// This overrides the default configuration loading behavior.
// Use this when you need fine-grained control over AWS SDK configuration.
func WithAWSConfig(config *aws.Config) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		c.CustomAWSConfig = config
	}
}

// WithFilesystem sets a custom filesystem implementation for file operations.
// This allows using in-memory filesystems for testing or virtual filesystems.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem fs.Filesystem) uploadtypes.Option {
	return func(c *uploadtypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithMaxConcurrentUploads caps the number of in-flight transfers for one
// batch call, overriding the client-wide default. Zero or negative values
// are a configuration error and are rejected before any transfer starts.
func WithMaxConcurrentUploads(limit int) uploadtypes.UploadOption {
	return func(c *uploadtypes.UploadOptionConfig) {
		c.MaxConcurrentUploads = limit
	}
}

// WithContentType sets the content type for every file in the batch,
// bypassing per-file detection.
func WithContentType(contentType string) uploadtypes.UploadOption {
	return func(c *uploadtypes.UploadOptionConfig) {
		c.ContentType = contentType
	}
}

// WithMetadata sets user metadata passed through to each PutObject call.
func WithMetadata(metadata map[string]string) uploadtypes.UploadOption {
	return func(c *uploadtypes.UploadOptionConfig) {
		if c.Metadata == nil {
			c.Metadata = make(map[string]string)
		}
		for k, v := range metadata {
			c.Metadata[k] = v
		}
	}
}

// WithStorageClass sets the storage class for every uploaded object.
func WithStorageClass(storageClass uploadtypes.StorageClass) uploadtypes.UploadOption {
	return func(c *uploadtypes.UploadOptionConfig) {
		c.StorageClass = storageClass
	}
}

// WithACL sets the canned ACL for every uploaded object.
func WithACL(acl uploadtypes.ObjectACL) uploadtypes.UploadOption {
	return func(c *uploadtypes.UploadOptionConfig) {
		c.ACL = acl
	}
}
