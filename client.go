// Package s3upload provides client initialization and configuration.
package s3upload

import (
	"context"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/internal/s3api"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/uploadtypes"
)

// DefaultConcurrency is the concurrency cap applied when no option overrides it.
const DefaultConcurrency = 5

// Client uploads local files to S3 with bounded concurrency.
// It is safe for concurrent use; each batch run owns its own state.
type Client struct {
	// s3Client is the underlying AWS SDK S3 client
	s3Client s3api.S3API

	// clientCfg holds the resolved client configuration
	clientCfg uploadtypes.ClientConfig

	// mu protects concurrent access to client configuration
	mu sync.RWMutex

	// fs is the filesystem abstraction for file operations
	fs fs.Filesystem
}

// New creates a new upload client with the provided options.
// Credentials are discovered through the default AWS credential chain
// (environment variables, the shared credentials file, then instance
// metadata), unless a custom aws.Config is supplied.
//
// Example:
//
//	client, err := s3upload.New(
//	    s3upload.WithRegion("us-west-2"),
//	    s3upload.WithConcurrency(10),
//	)
func New(opts ...uploadtypes.Option) (*Client, error) {
	clientCfg := &uploadtypes.ClientConfig{
		MaxRetries:     3,                  // Default retry count
		Timeout:        0,                  // No timeout by default
		Concurrency:    DefaultConcurrency, // Default concurrency cap
		ForcePathStyle: false,
	}

	for _, opt := range opts {
		opt(clientCfg)
	}

	var cfg aws.Config
	var err error

	if clientCfg.CustomAWSConfig != nil {
		cfg = *clientCfg.CustomAWSConfig
	} else {
		cfg, err = config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, errors.NewError("client initialization", err)
		}
	}

	if clientCfg.Region != "" {
		cfg.Region = clientCfg.Region
	} else if cfg.Region == "" {
		cfg.Region = "us-east-1" // AWS default region
	}

	if clientCfg.MaxRetries > 0 {
		cfg.RetryMaxAttempts = clientCfg.MaxRetries
	}

	var s3Opts []func(*s3.Options)

	if clientCfg.Endpoint != "" {
		endpoint := clientCfg.Endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	if clientCfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	if clientCfg.Timeout > 0 {
		httpClient := &http.Client{
			Timeout: clientCfg.Timeout,
		}
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = httpClient
		})
	}

	s3Client := s3.NewFromConfig(cfg, s3Opts...)

	// Use provided filesystem or default to the OS filesystem rooted at /
	var filesystem fs.Filesystem
	if clientCfg.Filesystem != nil {
		filesystem = clientCfg.Filesystem
	} else {
		filesystem = billy.NewOSFS("/")
	}

	return &Client{
		s3Client:  s3Client,
		clientCfg: *clientCfg,
		fs:        filesystem,
	}, nil
}

// NewWithClient creates a new upload client with a custom S3API implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(s3Client s3api.S3API) *Client {
	return &Client{
		s3Client: s3Client,
		clientCfg: uploadtypes.ClientConfig{
			Concurrency: DefaultConcurrency,
		},
		fs: billy.NewOSFS("/"), // Default to OS filesystem
	}
}

// SetFilesystem sets the filesystem implementation for the client.
// This is useful for testing or when the filesystem needs to be changed after creation.
func (c *Client) SetFilesystem(filesystem fs.Filesystem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fs = filesystem
}

// getClientConfig returns a copy of the current client configuration.
func (c *Client) getClientConfig() uploadtypes.ClientConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientCfg
}

// getFilesystem returns the current filesystem implementation.
//
//nolint:ireturn // callers operate on the filesystem abstraction.
func (c *Client) getFilesystem() fs.Filesystem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fs
}
