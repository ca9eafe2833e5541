// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/model"
)

// ProgressFunc receives upload progress as a 0-100 percentage. Progress
// display is single-slot: a second concurrent upload simply supersedes
// the shown value.
type ProgressFunc func(percent int)

// Uploader pushes files to the object-storage bucket using short-lived
// credentials minted by the backend. Credentials are requested fresh for
// every upload and never cached; each one is scoped to a single key.
type Uploader struct {
	client *api.Client

	// newStorage is swapped out by tests.
	newStorage func(cred *model.UploadCredential) (objectPutter, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// New creates an uploader over the gateway client.
func New(client *api.Client) *Uploader {
	return &Uploader{client: client, newStorage: newMinioStorage}
}

// Upload requests a credential for filename, streams r to the bucket,
// and returns the public URL for the stored object. Progress callbacks
// fire as bytes move; a failed upload leaves nothing inserted and
// surfaces a single error.
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader, size int64, onProgress ProgressFunc) (string, error) {
	cred, err := u.client.TempSecret(ctx, filename)
	if err != nil {
		return "", fmt.Errorf("failed to obtain upload credential: %w", err)
	}
	if cred.Key == "" {
		// Older backends leave key assignment to the client.
		cred.Key = uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	}

	storage, err := u.newStorage(cred)
	if err != nil {
		return "", fmt.Errorf("failed to init storage client: %w", err)
	}

	body := r
	if onProgress != nil && size > 0 {
		body = &progressReader{r: r, total: size, report: onProgress}
	}

	opts := minio.PutObjectOptions{ContentType: ContentType(filename)}
	if _, err := storage.PutObject(ctx, cred.CosBucket, cred.Key, body, size, opts); err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	if onProgress != nil {
		onProgress(100)
	}
	return cred.FileURL(), nil
}

func newMinioStorage(cred *model.UploadCredential) (objectPutter, error) {
	endpoint, secure, err := endpointFromURL(cred.CosURL)
	if err != nil {
		return nil, err
	}
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cred.SecretID, cred.SecretKey, cred.Token),
		Secure: secure,
		Region: cred.CosRegion,
	})
}

// endpointFromURL extracts the host endpoint from the bucket URL the
// credential carries.
func endpointFromURL(cosURL string) (endpoint string, secure bool, err error) {
	u, err := url.Parse(cosURL)
	if err != nil || u.Host == "" {
		return "", false, fmt.Errorf("invalid storage URL %q", cosURL)
	}
	return u.Host, u.Scheme != "http", nil
}

// =============================================================================
// HELPERS
// =============================================================================

// imageExtensions are the upload types inserted as image references;
// everything else becomes a plain link.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".svg": true, ".bmp": true,
}

// IsImage reports whether filename should be inserted as an image
// reference rather than a file link.
func IsImage(filename string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ContentType guesses the MIME type from the file extension, falling
// back to a generic binary type.
func ContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// progressReader reports cumulative read percentage while the SDK
// consumes the body.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct != p.last {
			p.last = pct
			p.report(pct)
		}
	}
	return n, err
}
