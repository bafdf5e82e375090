package seti

import (
	"fmt"
	"runtime/debug"
)

type VersionType struct {
	major, minor, patch int
}

func (self VersionType) String() string {
	return fmt.Sprint(self.major, ".", self.minor, ".", self.patch)
}

var Version = VersionType{major: 1, minor: 2, patch: 0}
var VersionString = Version.String()
var VCSRevision string

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, bs := range bi.Settings {
			if bs.Key == "vcs.revision" {
				VCSRevision = bs.Value
			}
		}
	}
}
