package io

import (
	"io"
	"os"
)

//go:generate mockgen -source=api.go -destination=mocks/mock.go -package=mocks

// FileIO is an interface for file io operations
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	Create(name string) (io.WriteCloser, error)
	IsSameFileSystem(source, target string) (bool, error)
	Open(name string) (*os.File, error)
	Rename(source, target string) error
	Copy(source, target string) (int64, error)
	Remove(name string) error
	MkdirAll(name string, perm os.FileMode) error
	FileExists(path string) bool
}
