package hosts

import (
	"os"

	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// ElevationChecker implements ports.ElevationChecker.
// A process is considered elevated when it runs privileged or when the
// hosts file is writable by the current user.
type ElevationChecker struct {
	path string
}

var _ ports.ElevationChecker = (*ElevationChecker)(nil)

// NewElevationChecker creates a checker for the given hosts file
func NewElevationChecker(path string) *ElevationChecker {
	return &ElevationChecker{path: path}
}

// IsElevated reports whether hosts file mutations can succeed
func (c *ElevationChecker) IsElevated() bool {
	return isPrivileged() || canWrite(c.path)
}

// canWrite checks write access without modifying the file
func canWrite(path string) bool {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
