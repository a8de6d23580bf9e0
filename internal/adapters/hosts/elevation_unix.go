//go:build unix

package hosts

import "golang.org/x/sys/unix"

func isPrivileged() bool {
	return unix.Geteuid() == 0
}
