// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var _ = fmt.Print

// AtomicWriteFile replaces the contents of path, or the file it links to,
// by writing to a temporary file in the same directory and renaming it.
// Readers never see a partially written file.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	if q, err := filepath.EvalSymlinks(path); err == nil {
		path = q
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if path, err = filepath.Abs(path); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	removed := false
	defer func() {
		f.Close()
		if !removed {
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(f.Name(), path); err == nil {
		removed = true
	}
	return
}
