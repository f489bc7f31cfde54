package fetch

import (
	"context"
	"io/ioutil"

	"github.com/pkg/errors"
)

// FileSource reads the archive from local disk.
type FileSource struct {
	Path string
}

func (s *FileSource) String() string {
	return s.Path
}

func (s *FileSource) ReadArchive(ctx context.Context) ([]byte, error) {
	data, err := ioutil.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", s.Path)
	}
	return data, nil
}
