// Package validation provides tests for input validation.
package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/errors"
)

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		wantErr bool
	}{
		{"valid simple name", "my-bucket", false},
		{"valid with dots", "my.bucket.name", false},
		{"valid with numbers", "bucket123", false},
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 63), false},
		{"empty name", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 64), true},
		{"uppercase letters", "My-Bucket", true},
		{"underscore", "my_bucket", true},
		{"starts with hyphen", "-bucket", true},
		{"ends with hyphen", "bucket-", true},
		{"starts with dot", ".bucket", true},
		{"ends with dot", "bucket.", true},
		{"adjacent dots", "my..bucket", true},
		{"adjacent hyphens", "my--bucket", true},
		{"ip address format", "192.168.1.1", true},
		{"space in name", "my bucket", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBucketName(tt.bucket)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidBucketName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid simple key", "file.txt", false},
		{"valid nested key", "uploads/dir/file.txt", false},
		{"valid with spaces", "my documents/report.pdf", false},
		{"valid unicode", "docs/résumé.txt", false},
		{"maximum length", strings.Repeat("a", 1024), false},
		{"empty key", "", true},
		{"too long", strings.Repeat("a", 1025), true},
		{"path traversal dots", "uploads/../etc/passwd", true},
		{"leading traversal", "../secret", true},
		{"absolute path", "/etc/passwd", true},
		{"control character", "file\x00name.txt", true},
		{"newline in key", "file\nname.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObjectKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidObjectKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
