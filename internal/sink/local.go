package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// LocalSink writes files below a root directory, creating directories as
// needed.
type LocalSink struct {
	root string
}

// NewLocal returns a sink rooted at dir.
func NewLocal(dir string) *LocalSink {
	return &LocalSink{root: dir}
}

// Location returns the root directory.
func (s *LocalSink) Location() string {
	return s.root
}

// WriteFile writes data to name below the root, replacing any existing file.
func (s *LocalSink) WriteFile(ctx context.Context, name string, data []byte) (err error) {
	err = ctx.Err()
	if err != nil {
		return err
	}

	name, err = cleanName(name)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(s.root, filepath.FromSlash(name))

	err = os.MkdirAll(filepath.Dir(outputPath), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}

	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing %s: %w", name, closeErr)
		}
	}()

	_, err = f.Write(data)
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}
