package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrIO marks every failure that comes from the filesystem or an external
// process rather than from the graph itself.
var ErrIO = errors.New("export: i/o failure")

// IOError records the operation and path of a failed write or render.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("export: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports true for ErrIO so callers need not know the concrete type.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// Exporter persists an encoded document under a logical name and returns
// where it ended up.
type Exporter interface {
	Export(name string, data []byte) (string, error)
}

// FileExporter writes documents as files below Dir, creating missing parents.
type FileExporter struct {
	Dir string
}

// NewFileExporter returns a FileExporter rooted at dir.
func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{Dir: dir}
}

// Export writes data to Dir/name and returns the full path.
func (x *FileExporter) Export(name string, data []byte) (string, error) {
	path := filepath.Join(x.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &IOError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &IOError{Op: "write", Path: path, Err: err}
	}

	return path, nil
}
