package system

import (
	"io"
	"os"
)

type File interface {
	io.ReadWriteCloser
	Name() string
	Stat() (os.FileInfo, error)
}

type FileSystem interface {
	OpenFile(path string, flag int, perm os.FileMode) (File, error)
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
}
