package activitylog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// Header is the first row of every activity log file
var Header = []string{
	"timestamp",
	"date",
	"time",
	"activity_type",
	"activity_details",
	"duration_seconds",
	"success",
	"metadata",
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
	// Rows written without a zone offset by older tools
	legacyTimestampLayout = "2006-01-02T15:04:05.999999"
)

// CSVLogger implements ports.ActivityLog on a CSV file
type CSVLogger struct {
	mu   sync.Mutex
	path string
}

var _ ports.ActivityLog = (*CSVLogger)(nil)

// NewCSVLogger creates a logger writing to path. The file is created lazily.
func NewCSVLogger(path string) *CSVLogger {
	return &CSVLogger{path: path}
}

// Path returns the log file location
func (l *CSVLogger) Path() string {
	return l.path
}

// Append writes one row, creating the file with a header when needed
func (l *CSVLogger) Append(event domain.ActivityEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create activity log directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat activity log: %w", err)
	}

	w := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("failed to write activity log header: %w", err)
		}
	}

	row, err := encodeRow(event)
	if err != nil {
		return err
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write activity row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush activity log: %w", err)
	}

	return nil
}

// Read returns events at or after since, in file order
func (l *CSVLogger) Read(since time.Time) ([]domain.ActivityEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	events, err := l.readAll()
	if err != nil {
		return nil, err
	}

	result := make([]domain.ActivityEvent, 0, len(events))
	for _, e := range events {
		if !e.Timestamp.Before(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Export copies the log to dst. A missing log exports a header-only file.
func (l *CSVLogger) Export(dst string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer out.Close()

	in, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		w := csv.NewWriter(out)
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("failed to write export header: %w", err)
		}
		w.Flush()
		return w.Error()
	}
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy activity log: %w", err)
	}
	return out.Sync()
}

// Prune rewrites the log keeping only rows at or after before.
// Rows whose timestamp cannot be parsed are dropped.
func (l *CSVLogger) Prune(before time.Time) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.readRows()
	if err != nil {
		return 0, err
	}
	if rows == nil {
		return 0, nil
	}

	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		ts, err := parseTimestamp(row[0])
		if err != nil || ts.Before(before) {
			continue
		}
		kept = append(kept, row)
	}
	removed := len(rows) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".activity-*.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(kept); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to write rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return 0, fmt.Errorf("failed to replace activity log: %w", err)
	}

	logging.Logger.Info("Activity log pruned", "removed", removed, "kept", len(kept))
	return removed, nil
}

// readAll decodes every well-formed row
func (l *CSVLogger) readAll() ([]domain.ActivityEvent, error) {
	rows, err := l.readRows()
	if err != nil {
		return nil, err
	}

	events := make([]domain.ActivityEvent, 0, len(rows))
	for i, row := range rows {
		event, err := decodeRow(row)
		if err != nil {
			logging.Logger.Debug("Skipping malformed activity row", "row", i+2, "error", err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

// readRows returns data rows without the header, or nil when the file is missing
func (l *CSVLogger) readRows() ([][]string, error) {
	file, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open activity log: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse activity log: %w", err)
	}
	if len(records) == 0 {
		return [][]string{}, nil
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(Header) {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func encodeRow(e domain.ActivityEvent) ([]string, error) {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	metadata := ""
	if len(e.Metadata) > 0 {
		data, err := json.Marshal(e.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to encode activity metadata: %w", err)
		}
		metadata = string(data)
	}

	return []string{
		ts.Format(time.RFC3339Nano),
		ts.Format(dateLayout),
		ts.Format(timeLayout),
		string(e.Type),
		e.Details,
		strconv.FormatInt(int64(e.Duration/time.Second), 10),
		strconv.FormatBool(e.Success),
		metadata,
	}, nil
}

func decodeRow(row []string) (domain.ActivityEvent, error) {
	ts, err := parseTimestamp(row[0])
	if err != nil {
		return domain.ActivityEvent{}, err
	}

	var seconds float64
	if row[5] != "" {
		seconds, err = strconv.ParseFloat(row[5], 64)
		if err != nil {
			return domain.ActivityEvent{}, fmt.Errorf("invalid duration %q: %w", row[5], err)
		}
	}

	success, err := strconv.ParseBool(row[6])
	if err != nil {
		success = false
	}

	var metadata map[string]any
	if row[7] != "" {
		if err := json.Unmarshal([]byte(row[7]), &metadata); err != nil {
			return domain.ActivityEvent{}, fmt.Errorf("invalid metadata: %w", err)
		}
	}

	return domain.ActivityEvent{
		Details:   row[4],
		Duration:  time.Duration(seconds * float64(time.Second)),
		Metadata:  metadata,
		Success:   success,
		Timestamp: ts,
		Type:      domain.ActivityType(row[3]),
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	ts, err := time.ParseInLocation(legacyTimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return ts, nil
}
