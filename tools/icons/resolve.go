// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"
	"path/filepath"
	"strings"
)

var _ = fmt.Print

// Extension returns everything from the last dot in name to its end, so
// archive.tar.gz has the extension .gz. Names without a dot have no
// extension.
func Extension(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx > -1 {
		return name[idx:]
	}
	return ""
}

// Resolve maps a file name to an icon and color. Exact file names are
// checked first, then the extension, then the partial patterns in table
// order, the first one found anywhere in the name winning. Names matching
// nothing get the default pair.
func (self *RuleTable) Resolve(file_name string) Pair {
	if ans, found := self.files[file_name]; found {
		return ans
	}
	if ext := Extension(file_name); ext != "" {
		if ans, found := self.extensions[ext]; found {
			return ans
		}
	}
	for _, p := range self.partials {
		if strings.Contains(file_name, p.Pattern) {
			return p.Pair
		}
	}
	return self.default_pair
}

// ResolvePath is Resolve applied to the last element of path.
func (self *RuleTable) ResolvePath(path string) Pair {
	if path == "" {
		return self.Resolve(path)
	}
	return self.Resolve(filepath.Base(path))
}
