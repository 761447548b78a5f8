// Package store persists run artifacts (run reports, manifests) produced by
// the extraction driver.
//
// Storage is implemented by LocalStorage, confined to a base directory, and by
// S3Storage for Amazon S3 and S3-compatible services such as MinIO. Keys are
// slash-separated and relative; keys that escape the storage root are rejected
// with ErrInvalidPath.
//
// # Usage
//
//	st, err := store.NewLocalStorage("./reduced")
//	if err != nil {
//	    return err
//	}
//	obj, err := st.Put(ctx, "runs/2f6c.yaml", bytes.NewReader(data), "application/yaml")
//
//	s3st, err := store.NewS3Storage(ctx, store.S3Config{Bucket: "spex", Region: "us-east-1"})
//
// # Error Handling
//
// Backend failures are mapped to the sentinels in errors.go (ErrObjectNotFound,
// ErrAccessDenied, ErrBucketNotFound, ...) so callers can use errors.Is
// regardless of the backend.
package store
