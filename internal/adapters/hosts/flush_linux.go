//go:build linux

package hosts

// flushCommands tries systemd-resolved first, then the older alias
func flushCommands() [][]string {
	return [][]string{
		{"resolvectl", "flush-caches"},
		{"systemd-resolve", "--flush-caches"},
	}
}
