//go:build !unix && !windows

package hosts

import "os"

// lockFile is a no-op on platforms without advisory locks
func lockFile(file *os.File) error {
	return nil
}

// unlockFile is a no-op on platforms without advisory locks
func unlockFile(file *os.File) error {
	return nil
}
