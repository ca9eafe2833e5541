// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package upload streams editor attachments to the object-storage
// bucket. Each upload requests a fresh single-key credential from the
// backend, pushes the file through the S3-compatible SDK with progress
// reporting, and yields the public (optionally CDN-signed) URL that gets
// spliced into the document as a markdown reference.
package upload
