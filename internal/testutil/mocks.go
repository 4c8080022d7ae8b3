// Package testutil provides test utilities and mocks for upload operations.
// This package is internal and should only be used for testing within this module.
package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MockS3Client is a mock implementation of the S3API interface for testing.
// PutObject behavior is customized through the PutObjectFunc field; by
// default every call succeeds. Calls are recorded keyed by object key.
type MockS3Client struct {
	PutObjectFunc func(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)

	mu    sync.Mutex
	calls []PutCall
}

// PutCall records one PutObject invocation.
type PutCall struct {
	Bucket      string
	Key         string
	ContentType string
	Body        []byte
	Metadata    map[string]string
}

// PutObject mocks the S3 PutObject operation.
func (m *MockS3Client) PutObject(
	ctx context.Context,
	params *s3.PutObjectInput,
	optFns ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	call := PutCall{
		Bucket:      aws.ToString(params.Bucket),
		Key:         aws.ToString(params.Key),
		ContentType: aws.ToString(params.ContentType),
		Metadata:    params.Metadata,
	}
	if params.Body != nil {
		body, err := io.ReadAll(params.Body)
		if err == nil {
			call.Body = body
		}
	}

	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()

	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

// Calls returns a snapshot of the recorded PutObject invocations.
func (m *MockS3Client) Calls() []PutCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]PutCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of PutObject invocations so far.
func (m *MockS3Client) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Keys returns the object keys of all recorded invocations, in call order.
func (m *MockS3Client) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.calls))
	for _, call := range m.calls {
		keys = append(keys, call.Key)
	}
	return keys
}
