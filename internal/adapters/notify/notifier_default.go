//go:build !darwin && !linux && !windows

package notify

// notify is a no-op on unsupported platforms
func notify(title, body string) error {
	return nil
}
