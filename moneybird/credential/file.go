package credential

import (
	"context"
	"io/fs"
	"os"

	"github.com/go-faster/errors"
)

// FileSource reads the credential blob from a local, human-edited file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Get reads the whole file. A missing file means "no blob yet", which is
// an absent result rather than an error.
func (f *FileSource) Get(_ context.Context) (string, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// StaticSource serves a fixed in-memory blob.
type StaticSource string

func (s StaticSource) Get(_ context.Context) (string, bool, error) {
	return string(s), true, nil
}
