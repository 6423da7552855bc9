package common

import (
	"io/fs"
	"os"
	"time"

	"github.com/cockroachdb/errors"
)

// IsStale reports whether dst has to be regenerated from srcs: dst does not
// exist yet or was modified before at least one of the sources.
func IsStale(dst string, srcs ...string) (bool, error) {
	dstInfo, err := os.Stat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", dst)
	}

	newest, err := NewestModTime(srcs...)
	if err != nil {
		return false, err
	}
	return dstInfo.ModTime().Before(newest), nil
}

// NewestModTime returns the latest modification time among paths.
func NewestModTime(paths ...string) (time.Time, error) {
	var newest time.Time
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "stat %s", p)
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	return newest, nil
}
