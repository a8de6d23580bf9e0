//go:build !unix && !windows

package hosts

func isPrivileged() bool {
	return false
}
