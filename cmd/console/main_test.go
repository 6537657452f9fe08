package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gocalc/pkg/history"
)

func TestRunWithoutHistory(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader("1 + 2 * 3\n"), &out, false, false, "", ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "7\n" {
		t.Errorf("expected %q, got %q", "7\n", out.String())
	}
}

func TestRunPersistsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.tsv")

	var out bytes.Buffer
	if err := run(strings.NewReader("2--3\n8/0\n"), &out, false, false, path, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	j := history.NewJournal()
	if err := j.LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	entries := j.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 persisted entries, got %d", len(entries))
	}
	if entries[0].Output != "5" || entries[0].Failed {
		t.Errorf("first entry = %+v", entries[0])
	}
	if !entries[1].Failed {
		t.Errorf("second entry should be a failure: %+v", entries[1])
	}

	// A second session appends to the loaded history.
	out.Reset()
	if err := run(strings.NewReader("1\n"), &out, false, false, path, ""); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	j = history.NewJournal()
	if err := j.LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if j.Len() != 3 {
		t.Errorf("expected 3 entries after second session, got %d", j.Len())
	}
}

func TestRunLenient(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader("3 apples * 4\n"), &out, true, false, "", ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "12\n" {
		t.Errorf("expected %q, got %q", "12\n", out.String())
	}
}
