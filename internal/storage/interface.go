package storage

import (
	"context"
	"io"
)

// ImageStore is the file storage boundary used for incident photos. Backed by
// the local filesystem here; the interface keeps a cloud backend (S3, Azure)
// swappable.
type ImageStore interface {
	// SaveImage stores one image under the given folder and returns its
	// storage path.
	SaveImage(ctx context.Context, file io.Reader, folder, fileName string) (string, error)

	// SaveImages stores several images and returns their paths in order.
	SaveImages(ctx context.Context, files []NamedFile, folder string) ([]string, error)

	// DeleteFile removes a stored file. Returns false when it did not exist.
	DeleteFile(ctx context.Context, path string) (bool, error)

	// Exists reports whether a stored file is present.
	Exists(ctx context.Context, path string) (bool, error)

	// IsValidImage sniffs the first bytes of the file and reports whether it
	// is an allowed image type.
	IsValidImage(header []byte) bool

	// ListFolder returns the stored paths under a folder (used by cleanup).
	ListFolder(ctx context.Context, folder string) ([]string, error)

	// Open opens a stored file for reading (used by the download handler).
	Open(path string) (io.ReadCloser, error)
}

// NamedFile pairs an upload's original file name with its content.
type NamedFile struct {
	Name   string
	Reader io.Reader
}
