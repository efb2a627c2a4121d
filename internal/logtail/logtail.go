package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const blockSize = 4096

// Tail returns at most n lines from the end of the file at path. The file is
// read backwards in blocks, so a long-running kiosk log only costs its tail.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 || path == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	// n+1 newlines guarantee the oldest kept line is complete.
	var buf []byte
	offset := info.Size()
	for offset > 0 && bytes.Count(buf, []byte{'\n'}) <= n {
		size := min(int64(blockSize), offset)
		offset -= size
		chunk := make([]byte, size)
		if _, err := file.ReadAt(chunk, offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		buf = append(chunk, buf...)
	}

	text := strings.TrimRight(string(buf), "\r\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// Level is the severity token found in a log line.
type Level int

const (
	LevelUnknown Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelTokens = map[string]Level{
	"DEBU":  LevelDebug,
	"DEBUG": LevelDebug,
	"INFO":  LevelInfo,
	"WARN":  LevelWarn,
	"ERRO":  LevelError,
	"ERROR": LevelError,
	"FATA":  LevelError,
	"FATAL": LevelError,
}

// ParseLevel finds the level of a text-formatted log line such as
// "2026/10/17 09:12:01 WARN kiosk: battery sample failed". Only the first few
// fields are inspected so message text never counts.
func ParseLevel(line string) Level {
	fields := strings.Fields(line)
	for i, f := range fields {
		if i >= 4 {
			break
		}
		if lvl, ok := levelTokens[strings.TrimSuffix(f, ":")]; ok {
			return lvl
		}
	}
	return LevelUnknown
}
