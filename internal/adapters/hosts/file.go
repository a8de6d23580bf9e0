package hosts

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// Marker tags every line Perry writes so it can be removed safely later
const Marker = "# perry-managed"

// File implements ports.HostBlockList on top of the OS hosts file
type File struct {
	flusher    ports.DNSFlusher
	path       string
	redirectIP string
}

var _ ports.HostBlockList = (*File)(nil)

// NewFile creates a hosts file block list. flusher may be nil.
func NewFile(path, redirectIP string, flusher ports.DNSFlusher) *File {
	return &File{
		flusher:    flusher,
		path:       path,
		redirectIP: redirectIP,
	}
}

// Path returns the hosts file location
func (f *File) Path() string {
	return f.path
}

// AddEntries appends a managed line for every domain not already managed
func (f *File) AddEntries(domains []string) error {
	if len(domains) == 0 {
		return nil
	}

	return f.mutate(func(lines []string) ([]string, bool) {
		managed := make(map[string]bool)
		for _, line := range lines {
			if d, ok := parseManaged(line); ok {
				managed[d] = true
			}
		}

		changed := false
		for _, d := range domains {
			if managed[d] {
				continue
			}
			managed[d] = true
			lines = append(lines, f.formatLine(d))
			changed = true
		}
		return lines, changed
	})
}

// RemoveEntries deletes managed lines for the given domains.
// Unmanaged lines are never touched, even when they name the same domain.
func (f *File) RemoveEntries(domains []string) error {
	if len(domains) == 0 {
		return nil
	}

	remove := make(map[string]bool, len(domains))
	for _, d := range domains {
		remove[d] = true
	}

	return f.mutate(func(lines []string) ([]string, bool) {
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			if d, ok := parseManaged(line); ok && remove[d] {
				continue
			}
			kept = append(kept, line)
		}
		return kept, len(kept) != len(lines)
	})
}

// ListManagedEntries returns the sorted domains tagged with Marker
func (f *File) ListManagedEntries() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, f.wrapErr("read", err)
	}

	lines, _ := splitLines(string(data))
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, line := range lines {
		if d, ok := parseManaged(line); ok && !seen[d] {
			seen[d] = true
			result = append(result, d)
		}
	}
	sort.Strings(result)
	return result, nil
}

// mutate rewrites the hosts file in place under an exclusive lock.
// The file is truncated and rewritten rather than replaced because the hosts
// file may be a bind mount.
func (f *File) mutate(apply func(lines []string) ([]string, bool)) error {
	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return f.wrapErr("open", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to lock hosts file: %w", err)
	}
	defer func() {
		if err := unlockFile(file); err != nil {
			logging.Logger.Warn("Failed to unlock hosts file", "path", f.path, "error", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return f.wrapErr("read", err)
	}

	lines, eol := splitLines(string(data))
	updated, changed := apply(lines)
	if !changed {
		return nil
	}

	content := strings.Join(updated, eol)
	if len(updated) > 0 {
		content += eol
	}

	if err := replaceContent(file, data, []byte(content)); err != nil {
		return f.wrapErr("write", err)
	}
	if err := file.Sync(); err != nil {
		return f.wrapErr("sync", err)
	}

	logging.Logger.Debug("Hosts file updated", "path", f.path, "lines", len(updated))

	if f.flusher != nil {
		if err := f.flusher.FlushDNS(); err != nil {
			logging.Logger.Warn("Failed to flush DNS cache", "error", err)
		}
	}

	return nil
}

// truncateWriter is the part of *os.File replaceContent needs
type truncateWriter interface {
	io.WriteSeeker
	Truncate(size int64) error
}

// replaceContent overwrites w with content. If the write fails the original
// bytes are written back so unrelated host entries survive.
func replaceContent(w truncateWriter, original, content []byte) error {
	err := overwrite(w, content)
	if err == nil {
		return nil
	}
	if restoreErr := overwrite(w, original); restoreErr != nil {
		logging.Logger.Error("Failed to restore hosts file after write error", "error", restoreErr)
		return errors.Join(err, fmt.Errorf("restore original content: %w", restoreErr))
	}
	return err
}

func overwrite(w truncateWriter, content []byte) error {
	if err := w.Truncate(0); err != nil {
		return err
	}
	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := w.Write(content)
	return err
}

func (f *File) formatLine(d string) string {
	return fmt.Sprintf("%s %s %s", f.redirectIP, d, Marker)
}

// wrapErr marks permission problems as ErrBlockListUnavailable
func (f *File) wrapErr(op string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: failed to %s %s: %w", domain.ErrBlockListUnavailable, op, f.path, err)
	}
	return fmt.Errorf("failed to %s hosts file %s: %w", op, f.path, err)
}

// parseManaged extracts the domain from a line written by formatLine
func parseManaged(line string) (string, bool) {
	before, ok := strings.CutSuffix(strings.TrimSpace(line), Marker)
	if !ok {
		return "", false
	}
	fields := strings.Fields(before)
	if len(fields) != 2 {
		return "", false
	}
	return fields[1], true
}

// splitLines splits content into lines and reports the line ending in use
func splitLines(content string) ([]string, string) {
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}
	if content == "" {
		return []string{}, eol
	}

	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, eol
}
