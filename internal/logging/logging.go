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

const defaultLogFile = "lapse-browser.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

// Entry is one line of the JSON trace. List names the collection the event
// belongs to and is empty for events outside any list.
type Entry struct {
	Time    time.Time   `json:"time"`
	List    string      `json:"list,omitempty"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Error writes err to the shared log file.
func Error(err error) {
	ListError("", err)
}

// ListError writes err to the shared log file, prefixed with the list it
// came from.
func ListError(list string, err error) {
	if err == nil {
		return
	}
	prefix := ""
	if list != "" {
		prefix = "[" + list + "] "
	}
	mu.Lock()
	defer mu.Unlock()
	appendLog("logging", func(w io.Writer) error {
		log.New(w, prefix, log.LstdFlags|log.Lmsgprefix).Println(err)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends an event that belongs to no particular list.
func Trace(event string, payload interface{}) {
	TraceList("", event, payload)
}

// TraceList appends a JSON entry tagged with list when tracing is enabled.
func TraceList(list, event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	entry := Entry{Time: time.Now().UTC(), List: list, Event: event, Payload: payload}
	appendLog("trace logging", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// Configure sets the log destination. Blank paths select the default file in
// the working directory; missing parent directories are created.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the active log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// appendLog opens the log for appending and hands it to write. Failures go
// to stderr since there is nowhere else to report them. mu must be held.
func appendLog(what string, write func(io.Writer) error) {
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
