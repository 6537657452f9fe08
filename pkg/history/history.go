package history

import (
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MaxJournalBytes is the budget for the text of all recorded entries.
// Recording past it evicts the oldest entries.
const MaxJournalBytes = 64 * 1024

var (
	ErrEntryTooLarge   = errors.New("entry larger than journal budget")
	ErrMalformedRecord = errors.New("malformed history record")
)

// Entry is one evaluated line.
type Entry struct {
	Time   time.Time
	Input  string
	Output string // decimal result, or the error message when Failed
	Failed bool
}

func (e Entry) size() int {
	return len(e.Input) + len(e.Output)
}

// Journal is an in-memory, size-bounded record of evaluated lines that can be
// persisted to a host file.
type Journal struct {
	Mu        sync.RWMutex
	entries   []Entry
	UsedBytes int
	Dirty     bool
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append records e, evicting the oldest entries until the journal fits within
// MaxJournalBytes.
func (j *Journal) Append(e Entry) error {
	j.Mu.Lock()
	defer j.Mu.Unlock()

	if e.size() > MaxJournalBytes {
		return ErrEntryTooLarge
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	for len(j.entries) > 0 && j.UsedBytes+e.size() > MaxJournalBytes {
		j.UsedBytes -= j.entries[0].size()
		j.entries = j.entries[1:]
	}
	j.entries = append(j.entries, e)
	j.UsedBytes += e.size()
	j.Dirty = true
	return nil
}

// Record appends the outcome of evaluating input. result is ignored when err
// is set.
func (j *Journal) Record(input string, result *big.Int, err error) error {
	e := Entry{Input: input}
	if err != nil {
		e.Output = err.Error()
		e.Failed = true
	} else {
		e.Output = result.String()
	}
	return j.Append(e)
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	j.Mu.RLock()
	defer j.Mu.RUnlock()
	return len(j.entries)
}

// Entries returns a copy of all entries, oldest first.
func (j *Journal) Entries() []Entry {
	j.Mu.RLock()
	defer j.Mu.RUnlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Last returns a copy of the newest n entries, oldest first.
func (j *Journal) Last(n int) []Entry {
	j.Mu.RLock()
	defer j.Mu.RUnlock()
	if n > len(j.entries) {
		n = len(j.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, n)
	copy(out, j.entries[len(j.entries)-n:])
	return out
}

// Clear drops every entry.
func (j *Journal) Clear() {
	j.Mu.Lock()
	defer j.Mu.Unlock()
	j.entries = nil
	j.UsedBytes = 0
	j.Dirty = true
}

// encode writes e as: RFC3339 time, quoted input, quoted output, status.
func encode(e Entry) string {
	status := "ok"
	if e.Failed {
		status = "err"
	}
	return strings.Join([]string{
		e.Time.UTC().Format(time.RFC3339Nano),
		strconv.Quote(e.Input),
		strconv.Quote(e.Output),
		status,
	}, "\t")
}

func decode(line string) (Entry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		return Entry{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedRecord, len(fields))
	}
	ts, err := time.Parse(time.RFC3339Nano, fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	input, err := strconv.Unquote(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: input: %v", ErrMalformedRecord, err)
	}
	output, err := strconv.Unquote(fields[2])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: output: %v", ErrMalformedRecord, err)
	}
	var failed bool
	switch fields[3] {
	case "ok":
	case "err":
		failed = true
	default:
		return Entry{}, fmt.Errorf("%w: unknown status %q", ErrMalformedRecord, fields[3])
	}
	return Entry{Time: ts, Input: input, Output: output, Failed: failed}, nil
}

// LoadFrom appends the records stored in the host file at path.
// Malformed records are skipped. Returns nil if the file does not exist
// (first run).
func (j *Journal) LoadFrom(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	var loaded []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		e, err := decode(line)
		if err != nil {
			continue
		}
		loaded = append(loaded, e)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	for _, e := range loaded {
		// Oversized records are skipped.
		_ = j.Append(e)
	}

	// Freshly loaded state matches the file.
	j.Mu.Lock()
	j.Dirty = false
	j.Mu.Unlock()
	return nil
}

// PersistTo rewrites the host file at path with every entry. The parent
// directory is created if it does not exist.
func (j *Journal) PersistTo(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// Snapshot under the lock, then release before doing I/O.
	j.Mu.Lock()
	lines := make([]string, len(j.entries))
	for i, e := range j.entries {
		lines[i] = encode(e)
	}
	j.Dirty = false
	j.Mu.Unlock()

	var data []byte
	if len(lines) > 0 {
		data = []byte(strings.Join(lines, "\n") + "\n")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		// Restore dirty flag on failure
		j.Mu.Lock()
		j.Dirty = true
		j.Mu.Unlock()
		return err
	}
	return nil
}

// StartSyncer flushes the journal to path every interval while it is dirty,
// until stop is closed.
func (j *Journal) StartSyncer(path string, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			j.Mu.RLock()
			dirty := j.Dirty
			j.Mu.RUnlock()
			if dirty {
				_ = j.PersistTo(path)
			}
		case <-stop:
			return
		}
	}
}
