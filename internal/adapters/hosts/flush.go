package hosts

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

const flushTimeout = 5 * time.Second

// DNSFlusher implements ports.DNSFlusher with the platform resolver tools
type DNSFlusher struct{}

var _ ports.DNSFlusher = (*DNSFlusher)(nil)

// NewDNSFlusher creates a new DNS flusher
func NewDNSFlusher() *DNSFlusher {
	return &DNSFlusher{}
}

// FlushDNS runs the flush commands for the current platform.
// Platform-specific command lists are in flush_*.go files with build tags.
func (d *DNSFlusher) FlushDNS() error {
	commands := flushCommands()
	if len(commands) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	var errs []error
	for _, c := range commands {
		out, err := exec.CommandContext(ctx, c[0], c[1:]...).CombinedOutput()
		if err == nil {
			logging.Logger.Debug("DNS cache flushed", "command", c[0])
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w (%s)", c[0], err, out))
	}

	return fmt.Errorf("failed to flush DNS cache: %w", errors.Join(errs...))
}
