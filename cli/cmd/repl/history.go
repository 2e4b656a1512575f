package repl

import (
	"bufio"
	"os"
	"slices"
	"strings"
	"sync"
)

const baseHistory = "history.utf8"

// HistoryEntry is a single history line and the mode it was entered in.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

// History manages REPL history with file persistence.
//
// Each line of the file carries a mode prefix: "E:" for expressions and
// "C:" for control commands. Lines without a prefix are expressions.
type History struct {
	path    string
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory creates a new History stored at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

func (m inputMode) prefix() string {
	if m == modeCtrl {
		return "C:"
	}

	return "E:"
}

// Load reads history entries from the history file. A missing file is not
// an error.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry := HistoryEntry{Line: line, Mode: modeEval}

		if s, ok := strings.CutPrefix(line, modeEval.prefix()); ok {
			entry.Line = s
		} else if s, ok := strings.CutPrefix(line, modeCtrl.prefix()); ok {
			entry.Line, entry.Mode = s, modeCtrl
		}

		h.entries = append(h.entries, entry)
	}

	return scanner.Err()
}

// WriteWithMode appends entry to the history. An older identical entry
// (same line and mode) moves to the end.
func (h *History) WriteWithMode(entry string, mode inputMode) (int, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return 0, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	next := HistoryEntry{Line: entry, Mode: mode}

	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == next {
		return len(entry), nil
	}

	i := slices.Index(h.entries, next)
	if i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
	}

	h.entries = append(h.entries, next)

	if i >= 0 {
		return h.rewriteFile()
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return file.WriteString(mode.prefix() + entry + "\n")
}

// GetEntry returns the entry at index i. Index 0 is the oldest entry.
func (h *History) GetEntry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// Entries returns a copy of all history entries.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.entries)
}

// rewriteFile rewrites the history file from the current entries.
// Must be called with h.mu held.
func (h *History) rewriteFile() (int, error) {
	file, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	total := 0

	for _, entry := range h.entries {
		n, err := file.WriteString(entry.Mode.prefix() + entry.Line + "\n")
		if err != nil {
			return total, err
		}

		total += n
	}

	return total, nil
}
