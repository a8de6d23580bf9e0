package ports

// HostBlockList mutates the OS name-resolution override file.
// Only entries tagged as Perry-managed are ever touched.
type HostBlockList interface {
	// AddEntries redirects the given domains to the loopback address
	AddEntries(domains []string) error

	// ListManagedEntries returns the domains currently tagged as Perry-managed
	ListManagedEntries() ([]string, error)

	// RemoveEntries deletes managed entries for the given domains (idempotent)
	RemoveEntries(domains []string) error
}

// ElevationChecker reports whether the process may mutate the block list
type ElevationChecker interface {
	IsElevated() bool
}

// DNSFlusher clears the OS resolver cache so block-list changes apply immediately
type DNSFlusher interface {
	FlushDNS() error
}
