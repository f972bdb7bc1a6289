package store

import (
	"os"

	"github.com/hashicorp/go-multierror"
)

// RemoveFiles deletes the given files, attempting every path even when some
// removals fail, and returns the accumulated failures if any
func RemoveFiles(paths []string) error {
	var result *multierror.Error
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
