//go:build windows

package hosts

func flushCommands() [][]string {
	return [][]string{
		{"ipconfig", "/flushdns"},
	}
}
