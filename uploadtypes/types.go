// Package uploadtypes provides shared type definitions for the batch upload module.
package uploadtypes

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// StorageClass represents the S3 storage class for uploaded objects.
type StorageClass string

// Predefined S3 storage classes
const (
	// StorageClassStandard is the default S3 storage class
	StorageClassStandard StorageClass = "STANDARD"

	// StorageClassStandardIA provides infrequent access storage
	StorageClassStandardIA StorageClass = "STANDARD_IA"

	// StorageClassOneZoneIA provides one zone infrequent access storage
	StorageClassOneZoneIA StorageClass = "ONEZONE_IA"

	// StorageClassIntelligentTiering provides intelligent tiering storage
	StorageClassIntelligentTiering StorageClass = "INTELLIGENT_TIERING"

	// StorageClassGlacier provides Glacier archival storage
	StorageClassGlacier StorageClass = "GLACIER"
)

// ObjectACL represents the access control list for uploaded objects.
type ObjectACL string

// Predefined object ACLs
const (
	// ACLPrivate grants private access (default)
	ACLPrivate ObjectACL = "private"

	// ACLPublicRead grants public read access
	ACLPublicRead ObjectACL = "public-read"

	// ACLAuthenticatedRead grants authenticated users read access
	ACLAuthenticatedRead ObjectACL = "authenticated-read"

	// ACLOwnerFullControl grants bucket owner full control
	ACLOwnerFullControl ObjectACL = "bucket-owner-full-control"
)

// LocalFile is one unit of batch work: a local file scheduled for transfer.
// Path doubles as the file's identifier within a batch run; it is unique
// because enumeration visits every file exactly once.
type LocalFile struct {
	// Path is the local file path, used to open the file and to key failures
	Path string

	// Key is the storage key the file uploads to
	Key string
}

// ClientConfig holds configuration for the upload client.
type ClientConfig struct {
	Region          string
	Endpoint        string
	MaxRetries      int
	Timeout         time.Duration
	Concurrency     int
	ForcePathStyle  bool
	CustomAWSConfig *aws.Config
	Filesystem      fs.Filesystem // Filesystem abstraction for file operations
}

// UploadOptionConfig holds per-call configuration via functional options.
type UploadOptionConfig struct {
	// MaxConcurrentUploads caps in-flight transfers for this call. It is
	// seeded with the client-wide default before options apply, so an
	// explicit non-positive value is a configuration error.
	MaxConcurrentUploads int

	// ContentType, when set, overrides detection for every file in the batch
	ContentType string

	// Metadata is passed through to PutObject untouched
	Metadata map[string]string

	// StorageClass is passed through to PutObject
	StorageClass StorageClass

	// ACL is passed through to PutObject
	ACL ObjectACL
}

// Option is a functional option for configuring the upload client.
type (
	Option func(*ClientConfig)
	// UploadOption is a functional option for configuring a batch upload call.
	UploadOption func(*UploadOptionConfig)
)
