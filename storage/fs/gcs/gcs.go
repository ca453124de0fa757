// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs implements a storage.Backend on Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	bstorage "github.com/benchmarkify/benchmarkify/storage"
)

// FS is a storage backend keeping each key as an object in a GCS
// bucket, optionally below a prefix.
type FS struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// Options configures authentication for NewFS. With the zero value
// the client uses Application Default Credentials.
type Options struct {
	// CredentialsFile is the path of a service account key file.
	CredentialsFile string
	// AccessToken is a pre-minted OAuth2 access token.
	AccessToken string
}

func (o Options) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if o.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(o.CredentialsFile))
	}
	if o.AccessToken != "" {
		opts = append(opts, option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.AccessToken})))
	}
	return opts
}

// NewFS constructs an FS that writes to bucket under prefix.
func NewFS(ctx context.Context, bucket, prefix string, opts Options) (*FS, error) {
	client, err := storage.NewClient(ctx, opts.clientOptions()...)
	if err != nil {
		return nil, err
	}
	return &FS{client: client, bucket: client.Bucket(bucket), prefix: prefix}, nil
}

func (fs *FS) object(key string) *storage.ObjectHandle {
	return fs.bucket.Object(path.Join(fs.prefix, key+".json"))
}

// Get downloads the object for key.
func (fs *FS) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := fs.object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("gcs %q: %w", key, bstorage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Put uploads value as the object for key.
func (fs *FS) Put(ctx context.Context, key string, value []byte) error {
	w := fs.object(key).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(value); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Close releases the underlying client.
func (fs *FS) Close() error {
	return fs.client.Close()
}
