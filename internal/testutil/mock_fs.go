package testutil

import (
	"io/fs"
	"os"
)

// MockFS is a mock implementation of promptpath.FileSystem for testing.
type MockFS struct {
	StatFunc func(name string) (fs.FileInfo, error)
	GlobFunc func(dir, pattern string) ([]string, error)
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	if m.StatFunc != nil {
		return m.StatFunc(name)
	}
	return nil, nil
}

func (m *MockFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (m *MockFS) Glob(dir, pattern string) ([]string, error) {
	if m.GlobFunc != nil {
		return m.GlobFunc(dir, pattern)
	}
	return nil, nil
}
