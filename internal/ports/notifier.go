package ports

// Notifier fires OS-level desktop notifications
type Notifier interface {
	// Notify shows a notification; callers treat failures as cosmetic
	Notify(title, body string) error
}
