package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const logFileName = "menubar.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = DefaultPath()
)

// DefaultPath is the log location used when none is configured: menubar.log
// under the user cache directory, or the working directory when that is
// unknown.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return logFileName
	}
	return filepath.Join(dir, "menubar", logFileName)
}

// Path reports the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Error appends err to the log file.
func Error(err error) {
	if err == nil {
		return
	}
	writeEntry("logging", func(w io.Writer) error {
		return log.New(w, "menubar: ", log.LstdFlags).Output(2, err.Error())
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes entries.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends one JSON line {time, event, payload} when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}
	writeEntry("trace logging", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// writeEntry opens the log for append and hands it to write. Writes are
// serialised so trace lines from concurrent commands never interleave.
func writeEntry(what string, write func(io.Writer) error) {
	mu.Lock()
	defer mu.Unlock()
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
	}
}

// Configure sets the log destination, creating its directory. An empty path
// selects DefaultPath.
func Configure(path string) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	mu.Lock()
	defer mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = logFileName
	}
	logPath = path
}
