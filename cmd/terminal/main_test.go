package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogIsDiscardedByDefault(t *testing.T) {
	w, closeLog, err := openLog("")
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer closeLog()
	if w != io.Discard {
		t.Fatalf("default log writer = %T, want io.Discard", w)
	}
}

func TestLogGoesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	w, closeLog, err := openLog(path)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	log.New(w, "", 0).Print("camera: closed")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "camera: closed") {
		t.Fatalf("log file = %q", data)
	}
}

func TestLogBadPath(t *testing.T) {
	if _, _, err := openLog(filepath.Join(t.TempDir(), "missing", "game.log")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
