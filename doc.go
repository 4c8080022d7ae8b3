// Package s3upload uploads local directory trees to S3 buckets with a hard
// cap on concurrent transfers and full failure aggregation.
//
// The package enumerates a directory into a flat work list, derives each
// file's storage key from a remote prefix and its local path, and drives the
// transfers through a bounded scheduler that never exceeds the configured
// concurrency cap. One file's failure never aborts the batch: callers either
// get total success or a BatchError listing every failed path and its cause.
//
// Basic usage:
//
//	client, err := s3upload.New(s3upload.WithRegion("us-west-2"))
//	if err != nil {
//	    return err
//	}
//
//	err = client.UploadDirectory(ctx, "local/dir", "my-bucket", "uploads/dir",
//	    s3upload.WithMaxConcurrentUploads(10),
//	)
//	if batchErr, ok := errors.AsBatchError(err); ok {
//	    for _, path := range batchErr.Paths() {
//	        log.Printf("failed %s: %v", path, batchErr.Cause(path))
//	    }
//	}
package s3upload
