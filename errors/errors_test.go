// Package errors provides tests for the error types.
package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	base := stderrors.New("connection refused")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "op only",
			err:  NewError("uploadBatch", base),
			want: "s3upload.uploadBatch: connection refused",
		},
		{
			name: "with bucket",
			err:  NewError("uploadBatch", base).WithBucket("my-bucket"),
			want: "s3upload.uploadBatch bucket my-bucket: connection refused",
		},
		{
			name: "with key",
			err:  NewError("uploadBatch", base).WithKey("a/b.txt"),
			want: "s3upload.uploadBatch object a/b.txt: connection refused",
		},
		{
			name: "with bucket and key",
			err:  NewError("uploadBatch", base).WithBucket("my-bucket").WithKey("a/b.txt"),
			want: "s3upload.uploadBatch my-bucket/a/b.txt: connection refused",
		},
		{
			name: "with message",
			err:  NewError("uploadDirectory", ErrInvalidInput).WithMessage("local path cannot be empty"),
			want: "s3upload.uploadDirectory: local path cannot be empty: s3upload: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	base := stderrors.New("boom")
	err := NewError("uploadBatch", base).WithBucket("b")

	assert.ErrorIs(t, err, base)
	assert.Equal(t, base, err.Unwrap())
}

func TestError_WithMessage_PreservesChain(t *testing.T) {
	err := NewError("uploadDirectory", ErrNotDirectory).WithMessage("bad root")

	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestBatchError_SingleFailure(t *testing.T) {
	cause := stderrors.New("access denied")
	batchErr := NewBatchError(map[string]error{"dir/a.txt": cause})

	assert.Equal(t, "s3upload: 1 file failed: dir/a.txt: access denied", batchErr.Error())
	assert.Equal(t, 1, batchErr.Len())
	assert.Equal(t, cause, batchErr.Cause("dir/a.txt"))
}

func TestBatchError_MultipleFailures(t *testing.T) {
	batchErr := NewBatchError(map[string]error{
		"b.txt": stderrors.New("e2"),
		"a.txt": stderrors.New("e1"),
		"c.txt": stderrors.New("e3"),
	})

	assert.Equal(t, "s3upload: 3 files failed", batchErr.Error())
	assert.Equal(t, 3, batchErr.Len())
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, batchErr.Paths())
	assert.Nil(t, batchErr.Cause("untouched.txt"))
}

func TestBatchError_MatchesSentinel(t *testing.T) {
	batchErr := NewBatchError(map[string]error{"a.txt": stderrors.New("e")})

	assert.ErrorIs(t, batchErr, ErrBatchFailed)
	assert.True(t, IsBatchFailed(batchErr))

	// The sentinel still matches through an operation wrapper.
	wrapped := NewError("uploadBatch", batchErr).WithBucket("b")
	assert.ErrorIs(t, wrapped, ErrBatchFailed)
	assert.True(t, IsBatchFailed(wrapped))
}

func TestAsBatchError(t *testing.T) {
	cause := stderrors.New("e")
	batchErr := NewBatchError(map[string]error{"a.txt": cause})
	wrapped := NewError("uploadDirectory", batchErr).WithBucket("b")

	got, ok := AsBatchError(wrapped)
	require.True(t, ok)
	assert.Equal(t, batchErr, got)
	assert.Equal(t, cause, got.Cause("a.txt"))

	_, ok = AsBatchError(stderrors.New("unrelated"))
	assert.False(t, ok)

	_, ok = AsBatchError(nil)
	assert.False(t, ok)
}

func TestIsInvalidInput(t *testing.T) {
	err := NewError("uploadDirectory", ErrInvalidInput).WithMessage("empty path")

	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsInvalidInput(stderrors.New("other")))
}
