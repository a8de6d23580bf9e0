//go:build !darwin && !linux && !windows

package hosts

// flushCommands has nothing to run on unsupported platforms
func flushCommands() [][]string {
	return nil
}
