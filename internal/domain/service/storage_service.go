package service

import (
	"context"
	"time"
)

// ObjectStorage is the capability surface the app needs from the
// S3-compatible store: mint collision-free keys, hand out short-lived signed
// PUT URLs, and turn stored values into something a browser can load.
type ObjectStorage interface {
	MintKey(filename string) string
	PresignUpload(ctx context.Context, key, contentType string) (url string, expiresAt time.Time, err error)
	ResolveURL(ctx context.Context, pathOrURL string) (string, error)
}
