// Package gcs adapts Google Cloud Storage to the pipeline's ObjectStore
// contract.
package gcs

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// StoreError wraps a blob-layer failure with its location and, when the
// backend reported one, the HTTP status code.
type StoreError struct {
	Bucket string
	Key    string
	Status int
	Err    error
}

func (e *StoreError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("store %s/%s: status %d: %v", e.Bucket, e.Key, e.Status, e.Err)
	}
	return fmt.Sprintf("store %s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store writes objects into one fixed bucket.
type Store struct {
	bucket *storage.BucketHandle
	name   string
}

func NewStore(client *storage.Client, bucket string) *Store {
	return &Store{bucket: client.Bucket(bucket), name: bucket}
}

func (s *Store) BucketName() string { return s.name }

// Put writes content at key, overwriting any existing object. No
// preconditions and no versioning; the pipeline relies on overwrite
// semantics for idempotent re-processing.
func (s *Store) Put(ctx context.Context, key string, content []byte, contentType string, metadata map[string]string) error {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = metadata

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return s.wrap(key, err)
	}
	if err := w.Close(); err != nil {
		return s.wrap(key, err)
	}
	return nil
}

func (s *Store) wrap(key string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &StoreError{Bucket: s.name, Key: key, Status: gerr.Code, Err: err}
	}
	return &StoreError{Bucket: s.name, Key: key, Err: err}
}
