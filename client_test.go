// Package s3upload provides tests for client initialization and options.
package s3upload

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/internal/testutil"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/uploadtypes"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		opts   []uploadtypes.Option
		verify func(*testing.T, *Client)
	}{
		{
			name: "defaults",
			opts: []uploadtypes.Option{
				WithAWSConfig(&aws.Config{Region: "us-east-1"}),
			},
			verify: func(t *testing.T, c *Client) {
				cfg := c.getClientConfig()
				assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
				assert.Equal(t, 3, cfg.MaxRetries)
				assert.Zero(t, cfg.Timeout)
				assert.False(t, cfg.ForcePathStyle)
			},
		},
		{
			name: "with region",
			opts: []uploadtypes.Option{
				WithAWSConfig(&aws.Config{}),
				WithRegion("eu-west-1"),
			},
			verify: func(t *testing.T, c *Client) {
				assert.Equal(t, "eu-west-1", c.getClientConfig().Region)
			},
		},
		{
			name: "with concurrency",
			opts: []uploadtypes.Option{
				WithAWSConfig(&aws.Config{Region: "us-east-1"}),
				WithConcurrency(12),
			},
			verify: func(t *testing.T, c *Client) {
				assert.Equal(t, 12, c.getClientConfig().Concurrency)
			},
		},
		{
			name: "non-positive concurrency ignored",
			opts: []uploadtypes.Option{
				WithAWSConfig(&aws.Config{Region: "us-east-1"}),
				WithConcurrency(0),
				WithConcurrency(-5),
			},
			verify: func(t *testing.T, c *Client) {
				assert.Equal(t, DefaultConcurrency, c.getClientConfig().Concurrency)
			},
		},
		{
			name: "with endpoint and path style",
			opts: []uploadtypes.Option{
				WithAWSConfig(&aws.Config{Region: "us-east-1"}),
				WithEndpoint("http://localhost:4566"),
				WithForcePathStyle(true),
			},
			verify: func(t *testing.T, c *Client) {
				cfg := c.getClientConfig()
				assert.Equal(t, "http://localhost:4566", cfg.Endpoint)
				assert.True(t, cfg.ForcePathStyle)
			},
		},
		{
			name: "with timeout and retries",
			opts: []uploadtypes.Option{
				WithAWSConfig(&aws.Config{Region: "us-east-1"}),
				WithTimeout(30 * time.Second),
				WithMaxRetries(7),
			},
			verify: func(t *testing.T, c *Client) {
				cfg := c.getClientConfig()
				assert.Equal(t, 30*time.Second, cfg.Timeout)
				assert.Equal(t, 7, cfg.MaxRetries)
			},
		},
		{
			name: "with filesystem",
			opts: []uploadtypes.Option{
				WithAWSConfig(&aws.Config{Region: "us-east-1"}),
				WithFilesystem(billy.NewInMemoryFS()),
			},
			verify: func(t *testing.T, c *Client) {
				assert.NotNil(t, c.getFilesystem())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts...)
			require.NoError(t, err)
			require.NotNil(t, client)
			tt.verify(t, client)
		})
	}
}

func TestNewWithClient(t *testing.T) {
	mock := testutil.NewMockBuilder().WithSuccessfulUpload().Build()

	client := NewWithClient(mock)

	require.NotNil(t, client)
	assert.Equal(t, DefaultConcurrency, client.getClientConfig().Concurrency)
	assert.NotNil(t, client.getFilesystem())
}

func TestClient_SetFilesystem(t *testing.T) {
	client := NewWithClient(testutil.NewMockBuilder().Build())

	memFS := billy.NewInMemoryFS()
	client.SetFilesystem(memFS)

	assert.Equal(t, memFS, client.getFilesystem())
}
