package codec

import (
	"errors"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/spf13/afero"
)

// NewFs returns the OS file system, rooted at root when it is set.
func NewFs(root string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if root == "" {
		return fs, nil
	}

	if exists, err := afero.DirExists(fs, root); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	return afero.NewBasePathFs(fs, root), nil
}

// tempName returns a hidden, unique file name inside dir.
func tempName(dir string) string {
	return filepath.Join(dir, "."+xid.New().String()+".tmp")
}
