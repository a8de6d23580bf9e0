//go:build darwin

package hosts

// flushCommands clears the directory service cache and restarts the resolver
func flushCommands() [][]string {
	return [][]string{
		{"sh", "-c", "dscacheutil -flushcache && killall -HUP mDNSResponder"},
	}
}
