package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalImageStore stores images on the local filesystem under a base
// directory, one subdirectory per folder.
type LocalImageStore struct {
	baseDir      string
	allowedTypes map[string]bool
}

func NewLocalImageStore(baseDir string, allowedTypes []string) (*LocalImageStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}

	return &LocalImageStore{
		baseDir:      baseDir,
		allowedTypes: allowed,
	}, nil
}

func (s *LocalImageStore) SaveImage(ctx context.Context, file io.Reader, folder, fileName string) (string, error) {
	dir := filepath.Join(s.baseDir, filepath.Clean(folder))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	// Unique name, original extension kept for content-type mapping on
	// download.
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	fullPath := filepath.Join(dir, name)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.Join(folder, name), nil
}

func (s *LocalImageStore) SaveImages(ctx context.Context, files []NamedFile, folder string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path, err := s.SaveImage(ctx, f.Reader, folder, f.Name)
		if err != nil {
			// Roll back everything saved so far; partial uploads confuse the
			// incident record.
			for _, p := range paths {
				_, _ = s.DeleteFile(ctx, p)
			}
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *LocalImageStore) DeleteFile(ctx context.Context, path string) (bool, error) {
	err := os.Remove(filepath.Join(s.baseDir, filepath.Clean(path)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *LocalImageStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.baseDir, filepath.Clean(path)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsValidImage sniffs the content rather than trusting the declared
// Content-Type header.
func (s *LocalImageStore) IsValidImage(header []byte) bool {
	contentType := http.DetectContentType(header)
	return s.allowedTypes[contentType]
}

func (s *LocalImageStore) ListFolder(ctx context.Context, folder string) ([]string, error) {
	dir := filepath.Join(s.baseDir, filepath.Clean(folder))
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	// Images live one subdirectory per owning record under the folder, so the
	// walk has to descend.
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *LocalImageStore) Open(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.baseDir, filepath.Clean(path)))
}
