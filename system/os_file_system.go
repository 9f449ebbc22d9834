package system

import (
	"io"
	"os"

	"github.com/charlievieth/fs"

	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
	boshlog "github.com/cloudfoundry/bosh-saltedhash/logger"
)

type osFileSystem struct {
	logger boshlog.Logger
	logTag string
}

func NewOsFileSystem(logger boshlog.Logger) FileSystem {
	return &osFileSystem{
		logger: logger,
		logTag: "File System",
	}
}

func (f *osFileSystem) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	f.logger.Debug(f.logTag, "Opening file '%s'", path)

	file, err := fs.OpenFile(path, flag, perm)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Opening file '%s'", path)
	}

	return file, nil
}

func (f *osFileSystem) ReadFile(path string) ([]byte, error) {
	file, err := f.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Reading file '%s'", path)
	}

	return content, nil
}

func (f *osFileSystem) FileExists(path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
