package logging

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit when nothing else is configured
const DefaultMaxLogFiles = 200

// Logger is shared by every package. It discards until Initialize enables a file.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize points Logger at a JSON log file when debugging is on and
// returns that file's path. PERRY_DEBUG, PERRY_DEBUG_FILE and
// PERRY_MAX_LOG_FILES fill in values the caller left at their defaults.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	debug, debugFile, maxLogFiles = applyEnv(debug, debugFile, maxLogFiles)

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	path := debugFile
	if path == "" {
		dir, err := logDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		path = sessionLogPath(dir, maxLogFiles)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("pid", os.Getpid())
	Logger.Info("Debug logging initialized", "log_file", path)

	return path, nil
}

func applyEnv(debug bool, debugFile string, maxLogFiles int) (bool, string, int) {
	if os.Getenv("PERRY_DEBUG") == "1" {
		debug = true
	}
	if debugFile == "" {
		debugFile = os.Getenv("PERRY_DEBUG_FILE")
	}
	if maxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("PERRY_MAX_LOG_FILES")); err == nil {
			maxLogFiles = n
		}
	}
	return debug, debugFile, maxLogFiles
}

// sessionLogPath names a fresh per-run log in dir, pruning old ones first.
// A custom --debug-file is never rotated.
func sessionLogPath(dir string, maxLogFiles int) string {
	if maxLogFiles > 0 {
		if err := os.MkdirAll(dir, 0755); err == nil {
			if err := rotateLogs(dir, maxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
	}
	name := fmt.Sprintf("perry-%s-%s.log", time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	return filepath.Join(dir, name)
}

// rotateLogs deletes the oldest *.log files so that, with the log about to
// be created, at most maxLogFiles remain
func rotateLogs(dir string, maxLogFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	var logs []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logFile{modTime: info.ModTime(), path: filepath.Join(dir, entry.Name())})
	}

	excess := len(logs) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b logFile) int {
		return cmp.Compare(a.modTime.UnixNano(), b.modTime.UnixNano())
	})
	for _, l := range logs[:excess] {
		if err := os.Remove(l.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", l.path, err)
		}
	}
	return nil
}

// logDir is the per-OS state directory for perry debug logs
func logDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "perry"), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, "perry", "logs"), nil
	case "linux":
		base := os.Getenv("XDG_STATE_HOME")
		if base == "" {
			base = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(base, "perry"), nil
	}
	return filepath.Join(home, ".perry", "logs"), nil
}
