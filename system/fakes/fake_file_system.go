package fakes

import (
	"bytes"
	"errors"
	"os"
	"sync"

	boshsys "github.com/cloudfoundry/bosh-saltedhash/system"
)

type FakeFileSystem struct {
	files     map[string]*FakeFile
	filesLock sync.Mutex

	OpenFileErr error
	ReadFileErr error
	OpenedPaths []string
}

type FakeFile struct {
	path     string
	Contents []byte
	buffer   *bytes.Reader

	ReadErr  error
	WriteErr error
	CloseErr error
	Closed   bool
	Stats    *FakeFileStats
}

type FakeFileStats struct {
	os.FileInfo
}

func NewFakeFileSystem() *FakeFileSystem {
	return &FakeFileSystem{
		files: map[string]*FakeFile{},
	}
}

func NewFakeFile(path string, contents []byte) *FakeFile {
	return &FakeFile{path: path, Contents: contents}
}

func (fs *FakeFileSystem) WriteFileString(path, content string) {
	fs.RegisterOpenFile(path, NewFakeFile(path, []byte(content)))
}

func (fs *FakeFileSystem) RegisterOpenFile(path string, file *FakeFile) {
	fs.filesLock.Lock()
	defer fs.filesLock.Unlock()

	file.path = path
	fs.files[path] = file
}

func (fs *FakeFileSystem) OpenFile(path string, flag int, perm os.FileMode) (boshsys.File, error) {
	fs.filesLock.Lock()
	defer fs.filesLock.Unlock()

	fs.OpenedPaths = append(fs.OpenedPaths, path)

	if fs.OpenFileErr != nil {
		return nil, fs.OpenFileErr
	}

	file, found := fs.files[path]
	if !found {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	file.buffer = bytes.NewReader(file.Contents)
	file.Closed = false

	return file, nil
}

func (fs *FakeFileSystem) ReadFile(path string) ([]byte, error) {
	if fs.ReadFileErr != nil {
		return nil, fs.ReadFileErr
	}

	fs.filesLock.Lock()
	defer fs.filesLock.Unlock()

	file, found := fs.files[path]
	if !found {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	return append([]byte(nil), file.Contents...), nil
}

func (fs *FakeFileSystem) FileExists(path string) bool {
	fs.filesLock.Lock()
	defer fs.filesLock.Unlock()

	_, found := fs.files[path]
	return found
}

func (f *FakeFile) Name() string {
	return f.path
}

func (f *FakeFile) Read(p []byte) (int, error) {
	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	if f.buffer == nil {
		f.buffer = bytes.NewReader(f.Contents)
	}
	return f.buffer.Read(p)
}

func (f *FakeFile) Write(p []byte) (int, error) {
	if f.WriteErr != nil {
		return 0, f.WriteErr
	}
	f.Contents = append(f.Contents, p...)
	return len(p), nil
}

func (f *FakeFile) Close() error {
	f.Closed = true
	return f.CloseErr
}

func (f *FakeFile) Stat() (os.FileInfo, error) {
	if f.Stats == nil {
		return nil, errors.New("fake-file-stats not registered")
	}
	return f.Stats, nil
}
