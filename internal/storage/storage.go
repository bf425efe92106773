// Package storage provides whole-file line persistence for the board's
// record files.
//
// The contract is deliberately simple: callers always pass the full
// desired content, and every write truncates and rewrites the file. There
// is no append path, no locking and no temp-file-then-rename step, so a
// crash mid-write can leave a truncated file behind. The board is a
// single-process, single-writer system and accepts that trade-off.
package storage

import (
	"bufio"
	"log/slog"
	"os"
)

// Lines reads every non-empty line of the file at path, in order.
//
// A file that does not exist or cannot be opened yields an empty slice,
// not an error: missing storage means an empty store. The condition is
// logged for the operator but never surfaced to the caller.
func Lines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("unable to open record file, treating as empty", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("error reading record file", "path", path, "error", err)
	}
	return lines
}

// Rewrite replaces the file at path with the given lines, one per line.
//
// Returns false if the file cannot be opened for writing or the write
// fails. The write is not atomic.
func Rewrite(path string, lines []string) bool {
	f, err := os.Create(path)
	if err != nil {
		slog.Error("unable to open record file for writing", "path", path, "error", err)
		return false
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			slog.Error("error writing record file", "path", path, "error", err)
			return false
		}
	}
	if err := w.Flush(); err != nil {
		slog.Error("error flushing record file", "path", path, "error", err)
		return false
	}
	return true
}
