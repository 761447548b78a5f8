package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem.
// All operations are confined to baseDir.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a local storage rooted at baseDir, creating the
// directory if needed.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve base directory: %v", ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(absBaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create base directory: %v", ErrFailedToWrite, err)
	}

	return &LocalStorage{baseDir: absBaseDir}, nil
}

// Put writes r to key. Partial files are removed on error or cancellation.
func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, rel, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	if rel == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidPath)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	dst, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	written, err := copyWithContext(ctx, dst, r)
	closeErr := dst.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("%w: %v", ErrFailedToWrite, closeErr)
	}
	if err != nil {
		_ = os.Remove(absPath)
		return nil, err
	}

	return &Object{
		Key:         rel,
		Size:        written,
		ContentType: contentType,
		Location:    absPath,
	}, nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, _, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	return data, nil
}

func (s *LocalStorage) Exists(ctx context.Context, key string) bool {
	if ctx.Err() != nil {
		return false
	}
	absPath, _, err := s.resolve(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(absPath)
	return err == nil
}

// Delete removes a single file. Directories are refused.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, _, err := s.resolve(key)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return fmt.Errorf("%w: %v", ErrFailedToDelete, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, key)
	}

	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDelete, err)
	}
	return nil
}

// List returns the files directly under prefix. Subdirectories are skipped.
func (s *LocalStorage) List(ctx context.Context, prefix string) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, rel, err := s.resolve(prefix)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToList, err)
	}

	objects := make([]Object, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		key := entry.Name()
		if rel != "" {
			key = rel + "/" + key
		}
		objects = append(objects, Object{
			Key:      key,
			Size:     info.Size(),
			Location: filepath.Join(absPath, entry.Name()),
		})
	}
	return objects, nil
}

// resolve maps key to an absolute path inside baseDir.
func (s *LocalStorage) resolve(key string) (abs, rel string, err error) {
	rel, err = cleanKey(key)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", err, key)
	}

	abs = filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if abs != s.baseDir && !strings.HasPrefix(abs, s.baseDir+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}
	return abs, rel, nil
}

func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	var written int64
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			nw, writeErr := dst.Write(buf[:n])
			written += int64(nw)
			if writeErr != nil {
				return written, fmt.Errorf("%w: %v", ErrFailedToWrite, writeErr)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("%w: %v", ErrFailedToRead, readErr)
		}
	}
}
