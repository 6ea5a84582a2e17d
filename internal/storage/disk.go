package storage

import (
	"io"
	"os"
	"path/filepath"
)

type DiskStorage struct {
	// BasePath is a directory writable by the current process; files under
	// it are served at /uploads by the route layer.
	BasePath string
}

func NewDiskStorage(basePath string) *DiskStorage {
	return &DiskStorage{BasePath: basePath}
}

func (s *DiskStorage) Save(name string, reader io.Reader) error {
	fileName := filepath.Join(s.BasePath, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, reader)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (s *DiskStorage) PublicURL(name string) string {
	return "/uploads/" + name
}
